package slider

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rangeslider/track"
)

type modifiedArrow struct {
	base tea.KeyType
	mods track.Modifiers
}

// Terminals report modified arrows as distinct key types.
var modifiedArrows = map[tea.KeyType]modifiedArrow{
	tea.KeyShiftLeft:      {base: tea.KeyLeft, mods: track.ModShift},
	tea.KeyShiftRight:     {base: tea.KeyRight, mods: track.ModShift},
	tea.KeyShiftUp:        {base: tea.KeyUp, mods: track.ModShift},
	tea.KeyShiftDown:      {base: tea.KeyDown, mods: track.ModShift},
	tea.KeyCtrlLeft:       {base: tea.KeyLeft, mods: track.ModCtrl},
	tea.KeyCtrlRight:      {base: tea.KeyRight, mods: track.ModCtrl},
	tea.KeyCtrlUp:         {base: tea.KeyUp, mods: track.ModCtrl},
	tea.KeyCtrlDown:       {base: tea.KeyDown, mods: track.ModCtrl},
	tea.KeyCtrlShiftLeft:  {base: tea.KeyLeft, mods: track.ModCtrl | track.ModShift},
	tea.KeyCtrlShiftRight: {base: tea.KeyRight, mods: track.ModCtrl | track.ModShift},
	tea.KeyCtrlShiftUp:    {base: tea.KeyUp, mods: track.ModCtrl | track.ModShift},
	tea.KeyCtrlShiftDown:  {base: tea.KeyDown, mods: track.ModCtrl | track.ModShift},
}

// splitModifiers returns msg with its modifiers stripped, plus the stripped
// modifiers.
func splitModifiers(msg tea.KeyMsg) (tea.KeyMsg, track.Modifiers) {
	var mods track.Modifiers
	if msg.Alt {
		mods |= track.ModAlt
		msg.Alt = false
	}
	if ma, ok := modifiedArrows[msg.Type]; ok {
		msg.Type = ma.base
		mods |= ma.mods
	}
	return msg, mods
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.cfg.Keyboard || msg.Paste {
		return m, nil
	}

	plain, mods := splitModifiers(msg)
	km := m.cfg.KeyMap
	switch {
	case key.Matches(plain, km.Decrement):
		m.core.Key(track.DirDown, mods)
	case key.Matches(plain, km.Increment):
		m.core.Key(track.DirUp, mods)
	}
	return m, nil
}
