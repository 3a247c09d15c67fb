package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the task view responds to. The input is always
// focused, so no binding may use a printable key.
type keyMap struct {
	Add        key.Binding
	AddDone    key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Remove     key.Binding
	ToggleAll  key.Binding
	ClearDone  key.Binding
	Filter     key.Binding
	Theme      key.Binding
	CounterInc key.Binding
	CounterDec key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		AddDone:    key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "add as done")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Toggle:     key.NewBinding(key.WithKeys("tab", "ctrl+t"), key.WithHelp("tab", "toggle")),
		Remove:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove")),
		ToggleAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle all")),
		ClearDone:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear done")),
		Filter:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "filter")),
		Theme:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "theme")),
		CounterInc: key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "count up")),
		CounterDec: key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "count down")),
		Help:       key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "more")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.AddDone, k.Up, k.Down},
		{k.Toggle, k.Remove, k.ToggleAll, k.ClearDone},
		{k.Filter, k.Theme, k.CounterInc, k.CounterDec},
		{k.Help, k.Quit},
	}
}
