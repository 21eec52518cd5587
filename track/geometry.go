package track

import "math"

// Measure is the raw layout input for Recompute.
//
// ContainerWidth and HandleWidth are outer widths: margins excluded, padding
// and borders included. ContainerLeft is the container's left edge in the same
// coordinate space as pointer events.
type Measure struct {
	ContainerWidth float64
	HandleWidth    float64
	ContainerLeft  float64
}

// Geometry is derived layout. It is only ever produced by Recompute.
type Geometry struct {
	ContainerWidth float64
	HandleWidth    float64
	ContainerLeft  float64

	// TravelPx is how far the handle's left edge can move. It is negative when
	// the handle is wider than the container.
	TravelPx      float64
	TravelPercent float64

	FullRange      float64
	PxPerStep      float64
	PercentPerStep float64
}

// Recompute derives Geometry from a measurement and a range.
//
// Zero container width or zero range yield zero per-step factors rather than
// NaN or Inf.
func Recompute(ms Measure, r Range) Geometry {
	g := Geometry{
		ContainerWidth: ms.ContainerWidth,
		HandleWidth:    ms.HandleWidth,
		ContainerLeft:  ms.ContainerLeft,
		TravelPx:       ms.ContainerWidth - ms.HandleWidth,
		FullRange:      r.Full(),
	}
	if g.ContainerWidth != 0 {
		g.TravelPercent = g.TravelPx / g.ContainerWidth * 100
	}
	if g.FullRange != 0 {
		g.PxPerStep = g.TravelPx / g.FullRange
		g.PercentPerStep = g.TravelPercent / g.FullRange
	}
	return g
}

// PercentOffset is the handle's left offset for n, as a percentage of the
// container width. It is measured from Min, (n-Min)*PercentPerStep, so Min
// sits at 0% for any range; n*PercentPerStep would shift the handle right by
// Min steps.
func (g Geometry) PercentOffset(r Range, n int) float64 {
	return (float64(n) - float64(r.Min)) * g.PercentPerStep
}

// PixelOffset is the handle's left offset for n relative to the container's
// left edge, measured from Min like PercentOffset.
func (g Geometry) PixelOffset(r Range, n int) float64 {
	return (float64(n) - float64(r.Min)) * g.PxPerStep
}

// ValueAt maps a handle offset (relative to the container's left edge) to the
// nearest whole value in r. ok is false when the geometry has no usable
// travel.
func (g Geometry) ValueAt(r Range, px float64) (int, bool) {
	if g.PxPerStep == 0 || math.IsNaN(px) {
		return 0, false
	}
	v := float64(r.Min) + roundHalfUp(px/g.PxPerStep)
	// float64(MaxInt) rounds up past MaxInt, so the bounds are inclusive.
	if v <= float64(r.Min) {
		return r.Min, true
	}
	if v >= float64(r.Max) {
		return r.Max, true
	}
	return int(v), true
}

func (g Geometry) frame(r Range, n int) Frame {
	return Frame{
		Value:               n,
		HandleOffsetPercent: g.PercentOffset(r, n),
		HandleOffsetPx:      g.PixelOffset(r, n),
	}
}
