package track

// PressHandle starts a drag gesture at pointer position x.
//
// Only the primary button starts a drag. The press claims the owner slot,
// attaches move/release routing and fires OnStart.
func (s *Slider) PressHandle(x float64, b Button) (Frame, bool) {
	if b != ButtonPrimary {
		return s.Frame(), false
	}
	if s.listening {
		_ = s.violation("press-handle", "previous gesture was never released")
		s.endGesture()
	}

	s.owner.Claim(s.slot)
	s.active = true
	s.dragging = true
	s.fuzzyPx = x - s.geo.ContainerLeft
	s.beginGesture()

	s.hooks.dispatch(EventStart, s.Snapshot())
	return s.Frame(), true
}

// Move applies a pointer move at x during a drag.
//
// A move while not dragging is an invariant violation: it is reported,
// returned, and not applied. OnChange fires when the value changes.
func (s *Slider) Move(x float64) (Frame, error) {
	if !s.dragging {
		return s.Frame(), s.violation("move", "pointer moved while not dragging")
	}

	drag := x - s.geo.ContainerLeft - s.fuzzyPx
	v, ok := s.geo.ValueAt(s.rng, drag+s.absolutePx)
	if !ok {
		return s.Frame(), nil
	}
	// absolutePx stays at the gesture's starting value until release.
	if s.store.Set(v) {
		s.hooks.dispatch(EventChange, s.Snapshot())
	}
	return s.Frame(), nil
}

// Release ends the drag gesture.
//
// Move/release routing is detached on every path. The release is rejected
// (reported and returned) when this slider is not the owner, is not active, or
// is not dragging. Otherwise focus returns to the handle and OnChange then
// OnFinish fire with the committed value.
func (s *Slider) Release() (Frame, error) {
	defer s.endGesture()

	if !s.owner.Is(s.slot) {
		s.active = false
		s.dragging = false
		return s.Frame(), s.violation("release", "slider is not the current owner")
	}
	if !s.active {
		s.dragging = false
		return s.Frame(), s.violation("release", "slider is not active")
	}
	if !s.dragging {
		s.active = false
		return s.Frame(), s.violation("release", "slider is not dragging")
	}

	s.commit(s.store.Value())
	s.active = false
	s.dragging = false
	s.Focus()

	snap := s.Snapshot()
	s.hooks.dispatch(EventChange, snap)
	s.hooks.dispatch(EventFinish, snap)
	return s.Frame(), nil
}

// Cancel abandons a gesture without hooks, e.g. when the terminal loses
// focus mid-drag and the release is never delivered. The value reached so
// far is kept.
func (s *Slider) Cancel() {
	if !s.listening && !s.active {
		return
	}
	s.commit(s.store.Value())
	s.active = false
	s.dragging = false
	s.endGesture()
}

func (s *Slider) beginGesture() { s.listening = true }

func (s *Slider) endGesture() { s.listening = false }
