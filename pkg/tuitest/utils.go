// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single rune.
func KeyPress(key rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}}
}

// Type creates one key press message per rune of s.
func Type(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, KeyPress(r))
	}
	return msgs
}

// Key creates a key message of the given special type.
func Key(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

// AltKey creates a key message of the given type with alt held.
func AltKey(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t, Alt: true}
}

// KeyDown creates a down arrow key press message.
func KeyDown() tea.Msg {
	return Key(tea.KeyDown)
}

// KeyUp creates an up arrow key press message.
func KeyUp() tea.Msg {
	return Key(tea.KeyUp)
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.Msg {
	return Key(tea.KeyEnter)
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
