package slider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderContainer() string {
	st := m.cfg.Style
	container := st.Container.UnsetPadding().UnsetBorderStyle().UnsetWidth()
	return container.Render(m.renderRow())
}

// renderRow draws the track row: fill left of the handle, the handle, then
// the remaining track. A handle wider than the container is drawn alone.
func (m Model) renderRow() string {
	st := m.cfg.Style
	width := int(m.core.Geometry().ContainerWidth)
	hw := m.handleWidth()

	handle := m.handleStyle().Render(st.HandleGlyph)
	if width <= 0 {
		return ""
	}
	if hw > width {
		return handle
	}

	col := m.handleColumn()
	var sb strings.Builder
	sb.WriteString(m.renderFill(col))
	sb.WriteString(handle)
	if rest := width - col - hw; rest > 0 {
		sb.WriteString(st.Track.Render(strings.Repeat(st.TrackGlyph, rest)))
	}
	return sb.String()
}

func (m Model) renderFill(n int) string {
	if n <= 0 {
		return ""
	}
	st := m.cfg.Style
	colors := gradientColors(st.FillFrom, st.FillTo, n)
	if colors == nil {
		return st.Fill.Render(strings.Repeat(st.FillGlyph, n))
	}
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(st.Fill.Foreground(c).Render(st.FillGlyph))
	}
	return sb.String()
}

func (m Model) handleStyle() lipgloss.Style {
	st := m.cfg.Style
	switch {
	case m.core.Dragging():
		return st.HandleDragging
	case m.core.Owned():
		return st.HandleFocused
	default:
		return st.Handle
	}
}
