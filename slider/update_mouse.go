package slider

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rangeslider/track"
)

// updateMouse routes presses by hit region. Motion and release are routed
// only while a drag gesture is listening, wherever the pointer is on screen.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		b, ok := pointerButton(msg.Button)
		if !ok {
			return m, nil
		}
		switch m.hitTest(msg.X, msg.Y) {
		case regionHandle:
			m.core.PressHandle(float64(msg.X), b)
		case regionTrack:
			m.core.PressTrack(float64(msg.X), b)
		}

	case tea.MouseActionMotion:
		if m.core.Listening() {
			_, _ = m.core.Move(float64(msg.X))
		}

	case tea.MouseActionRelease:
		if m.core.Listening() {
			_, _ = m.core.Release()
		}
	}
	return m, nil
}

func pointerButton(b tea.MouseButton) (track.Button, bool) {
	switch b { //nolint:exhaustive
	case tea.MouseButtonLeft:
		return track.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return track.ButtonMiddle, true
	case tea.MouseButtonRight:
		return track.ButtonSecondary, true
	default:
		return 0, false
	}
}
