package slider

import "math"

type region uint8

const (
	regionNone region = iota
	regionTrack
	regionHandle
)

// hitTest classifies a screen cell against the container row.
func (m Model) hitTest(x, y int) region {
	if y != m.y+m.cfg.Style.Container.GetMarginTop() {
		return regionNone
	}
	g := m.core.Geometry()
	left := int(g.ContainerLeft)
	width := int(g.ContainerWidth)
	if x < left || x >= left+width {
		return regionNone
	}
	col := m.handleColumn()
	if x >= left+col && x < left+col+m.handleWidth() {
		return regionHandle
	}
	return regionTrack
}

// handleColumn is the handle's left edge in cells from the container's left
// edge, derived from the percentage offset of the current frame.
func (m Model) handleColumn() int {
	g := m.core.Geometry()
	f := m.core.Frame()
	col := int(math.Floor(f.HandleOffsetPercent/100*g.ContainerWidth + 0.5))
	maxCol := int(g.ContainerWidth) - m.handleWidth()
	if col > maxCol {
		col = maxCol
	}
	if col < 0 {
		col = 0
	}
	return col
}

// ScreenToValue maps a screen column to the value whose handle would start
// there. ok is false when the layout has no travel.
func (m Model) ScreenToValue(x int) (int, bool) {
	g := m.core.Geometry()
	return g.ValueAt(m.core.Range(), float64(x)-g.ContainerLeft)
}

// ValueToScreen returns the screen column of the handle's left edge for v.
func (m Model) ValueToScreen(v int) int {
	g := m.core.Geometry()
	r := m.core.Range()
	return int(g.ContainerLeft) + int(math.Floor(g.PixelOffset(r, r.Clamp(v))+0.5))
}
