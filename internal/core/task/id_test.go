package task

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	assert.Regexp(t, pattern, NewID())
}

func TestNewID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		seen[NewID()] = true
	}
	assert.Len(t, seen, 1000)
}

func TestFallbackID_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := FallbackID()
		assert.False(t, seen[id], "duplicate fallback id %s", id)
		seen[id] = true
	}
}
