package track

// ShiftOneStep moves the value one unit up or down, clamped at the bounds,
// and fires OnChange even when the value is already at a bound.
func (s *Slider) ShiftOneStep(up bool) Frame {
	delta := -1
	if up {
		delta = 1
	}
	s.store.Shift(delta)
	s.commit(s.store.Value())
	s.hooks.dispatch(EventChange, s.Snapshot())
	return s.Frame()
}

// PressTrack handles a press on the track outside the handle.
//
// The slider claims the owner slot and steps once toward the press: down when
// the press lies left of the handle's resting offset, up otherwise. The click
// is a complete gesture; the slider is idle again on return. Presses during a
// drag and non-primary buttons are ignored.
func (s *Slider) PressTrack(x float64, b Button) (Frame, bool) {
	if b != ButtonPrimary || s.dragging {
		return s.Frame(), false
	}

	s.owner.Claim(s.slot)
	s.active = true

	pos := x - s.geo.ContainerLeft
	f := s.ShiftOneStep(pos >= s.absolutePx)

	s.Focus()
	s.active = false
	return f, true
}

// Key handles an arrow key. It is ignored unless the keyboard is enabled, no
// modifier is held and this slider is the current owner.
func (s *Slider) Key(dir Direction, mods Modifiers) (Frame, bool) {
	if !s.keyboard || mods != 0 || !s.owner.Is(s.slot) {
		return s.Frame(), false
	}
	return s.ShiftOneStep(dir == DirUp), true
}
