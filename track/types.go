package track

import "math"

// Range is the numeric domain of a slider.
//
// Step is the configured logical increment. Dragging and one-step moves both
// move by single units of the value domain; Step is carried for hosts and
// validation only.
type Range struct {
	Min  int
	Max  int
	Step int
}

// Validate reports malformed ranges.
func (r Range) Validate() error {
	if r.Max <= r.Min {
		return ErrInvalidRange
	}
	if r.Step <= 0 {
		return ErrInvalidStep
	}
	return nil
}

// Clamp returns n limited to [Min, Max].
func (r Range) Clamp(n int) int {
	return clampInt(n, r.Min, r.Max)
}

// Full is Max - Min, computed in float64 so spans wider than an int fit.
func (r Range) Full() float64 { return float64(r.Max) - float64(r.Min) }

// Button identifies the pointer button of a press.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Direction of a one-step move.
type Direction uint8

const (
	DirDown Direction = iota
	DirUp
)

// Modifiers is a bit set of keyboard modifiers held with a key press.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModShift
	ModMeta
)

// Phase is the pointer interaction state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	// PhaseOwned: the instance owns the current gesture but is not applying moves.
	PhaseOwned
	// PhaseDragging: the handle is held and move events are applied.
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOwned:
		return "owned"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Frame is the outcome of a transition: the committed value and where the
// handle's left edge belongs inside the container.
type Frame struct {
	Value               int
	HandleOffsetPercent float64
	HandleOffsetPx      float64
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// roundHalfUp rounds like JavaScript's Math.round: halves go toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
