package slider

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// Tooltip composites the current value over view, centered on the handle in
// the row above the slider, while a drag is in progress. view must be the
// host's whole screen so the slider's position lines up with it. When the
// slider sits on the top row the tooltip goes below instead.
func (m Model) Tooltip(view string) string {
	if !m.core.Dragging() {
		return view
	}

	tip := m.cfg.Style.Tooltip.Render(strconv.Itoa(m.core.Value()))
	g := m.core.Geometry()
	x := int(g.ContainerLeft) + m.handleColumn() + m.handleWidth()/2 - lipgloss.Width(tip)/2
	if x < 0 {
		x = 0
	}
	y := m.y + m.cfg.Style.Container.GetMarginTop() - 1
	if y < 0 {
		y += 2
	}
	return overlay.Composite(tip, view, overlay.Left, overlay.Top, x, y)
}
