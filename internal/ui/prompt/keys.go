package prompt

import (
	"charm.land/bubbles/v2/key"

	"github.com/raphi011/choice/internal/choice"
)

// keyMap defines the prompt key bindings. Pick and Toggle share the
// space key; only the one matching the mode is enabled.
type keyMap struct {
	Up      key.Binding // move cursor up
	Down    key.Binding // move cursor down
	Top     key.Binding // first row
	Bottom  key.Binding // last row
	Pick    key.Binding // exclusive modes: choose the cursor row
	Toggle  key.Binding // multiple mode: check or uncheck the cursor row
	Confirm key.Binding // multiple mode: commit the checked rows
	Back    key.Binding // back navigation, cancels
	Cancel  key.Binding // clear filter, then cancel
	Quit    key.Binding // cancel immediately
}

func newKeyMap(mode choice.Mode) keyMap {
	km := keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Top:     key.NewBinding(key.WithKeys("home", "pgup")),
		Bottom:  key.NewBinding(key.WithKeys("end", "pgdown")),
		Pick:    key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "choose")),
		Toggle:  key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		Back:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	}
	if mode.Exclusive() {
		km.Toggle.SetEnabled(false)
		km.Confirm.SetEnabled(false)
	} else {
		km.Pick.SetEnabled(false)
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Pick, k.Toggle, k.Confirm, k.Back, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Pick, k.Toggle, k.Confirm},
		{k.Back, k.Cancel, k.Quit},
	}
}
