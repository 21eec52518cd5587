package track

// Store holds the single current value of a slider.
//
// Set clamps but does not snap to Range.Step.
type Store struct {
	rng   Range
	value int
}

func NewStore(r Range, initial int) Store {
	return Store{rng: r, value: r.Clamp(initial)}
}

func (s Store) Value() int { return s.value }

// Set clamps n into the range and stores it. It reports whether the stored
// value changed.
func (s *Store) Set(n int) bool {
	next := s.rng.Clamp(n)
	if next == s.value {
		return false
	}
	s.value = next
	return true
}

// Shift moves the value by delta units, saturating at the bounds. The
// remaining room is measured before adding, so the sum never overflows.
func (s *Store) Shift(delta int) bool {
	switch {
	case delta > 0:
		if uint(delta) >= uint(s.rng.Max)-uint(s.value) {
			return s.Set(s.rng.Max)
		}
	case delta < 0:
		if uint(0)-uint(delta) >= uint(s.value)-uint(s.rng.Min) {
			return s.Set(s.rng.Min)
		}
	}
	return s.Set(s.value + delta)
}
