package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the unmodified keys that step the slider. Arrow keys pressed
// with a modifier never step.
type KeyMap struct {
	Decrement key.Binding
	Increment key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Decrement: key.NewBinding(key.WithKeys("left", "down"), key.WithHelp("←/↓", "decrease")),
		Increment: key.NewBinding(key.WithKeys("right", "up"), key.WithHelp("→/↑", "increase")),
	}
}

func (km KeyMap) empty() bool {
	return len(km.Decrement.Keys()) == 0 && len(km.Increment.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Decrement, km.Increment}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
