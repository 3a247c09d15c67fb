package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "task add")
	assert.Equal(t, "task add", GetCommand(ctx))
}

func TestWithTaskID(t *testing.T) {
	ctx := WithTaskID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetTaskID(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCommand(ctx))
	assert.Empty(t, GetTaskID(ctx))
}
