package track

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant marks event-ordering violations, such as a move without
	// a drag or a release from an instance that does not own the gesture.
	ErrInvariant = errors.New("track: invariant violated")

	ErrInvalidRange = errors.New("track: max must be greater than min")
	ErrInvalidStep  = errors.New("track: step must be positive")
	ErrNotNumeric   = errors.New("track: value is not numeric")
	ErrNilOwner     = errors.New("track: owner context is nil")
)

// InvariantError describes one rejected event.
type InvariantError struct {
	Op     string
	Slot   int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("track: %s on slider %d: %s", e.Op, e.Slot, e.Reason)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }
