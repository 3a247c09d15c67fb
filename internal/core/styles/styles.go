// Package styles provides the shared lipgloss styles and palettes for the TUI.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Icons used across views.
const (
	IconChecked   = "[x]"
	IconUnchecked = "[ ]"
	IconCursor    = ">"
	IconDark      = "☾"
	IconLight     = "☀"
)

var mu sync.RWMutex

// Theme colors, set by SetTheme.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Component styles, rebuilt on every SetTheme.
var (
	TitleStyle         lipgloss.Style
	HeaderStyle        lipgloss.Style
	MutedStyle         lipgloss.Style
	TaskStyle          lipgloss.Style
	TaskDoneStyle      lipgloss.Style
	CursorStyle        lipgloss.Style
	SelectedStyle      lipgloss.Style
	ErrorStyle         lipgloss.Style
	HelpStyle          lipgloss.Style
	FilterActiveStyle  lipgloss.Style
	FilterStyle        lipgloss.Style
	ProgressFullStyle  lipgloss.Style
	ProgressEmptyStyle lipgloss.Style
	CounterStyle       lipgloss.Style
	InputStyle         lipgloss.Style
)

var current Palette

// CurrentPalette returns the palette last passed to SetTheme.
func CurrentPalette() Palette {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetTheme applies p to every exported color and style.
func SetTheme(p Palette) {
	mu.Lock()
	defer mu.Unlock()

	current = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ColorSurface).
		MarginBottom(1)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TaskStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TaskDoneStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)
	CursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SelectedStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	FilterActiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	FilterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorMuted)
	ProgressFullStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ProgressEmptyStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	CounterStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
}

// SetThemeByName applies the named palette and reports whether it exists.
func SetThemeByName(name string) bool {
	p, ok := GetPalette(name)
	if !ok {
		return false
	}
	SetTheme(p)
	return true
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultDarkPalette])
}
