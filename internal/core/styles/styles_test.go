package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPalette(t *testing.T) {
	for _, name := range ThemeNames() {
		t.Run(name, func(t *testing.T) {
			p, ok := GetPalette(name)
			require.True(t, ok)
			assert.NotEmpty(t, p.Primary)
			assert.NotEmpty(t, p.Foreground)
			assert.NotEmpty(t, p.Error)
		})
	}

	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)
}

func TestThemeNames_SortedAndIncludeDefaults(t *testing.T) {
	names := ThemeNames()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, DefaultDarkPalette)
	assert.Contains(t, names, DefaultLightPalette)
}

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetThemeByName(DefaultDarkPalette) })

	require.True(t, SetThemeByName("gruvbox-light"))
	want, _ := GetPalette("gruvbox-light")
	assert.Equal(t, want, CurrentPalette())
	assert.Equal(t, want.Primary, ColorPrimary)

	assert.False(t, SetThemeByName("nope"))
	assert.Equal(t, want, CurrentPalette(), "unknown theme leaves palette unchanged")
}
