package track

import (
	"errors"
	"testing"
)

func TestNew_RejectsMalformedRanges(t *testing.T) {
	cases := []struct {
		name string
		r    Range
		want error
	}{
		{name: "max equals min", r: Range{Min: 5, Max: 5, Step: 1}, want: ErrInvalidRange},
		{name: "max below min", r: Range{Min: 5, Max: 1, Step: 1}, want: ErrInvalidRange},
		{name: "zero step", r: Range{Min: 0, Max: 10, Step: 0}, want: ErrInvalidStep},
	}
	for _, tc := range cases {
		_, err := New(NewOwner(), Config{Range: tc.r})
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	if _, err := New(nil, Config{Range: Range{Max: 1, Step: 1}}); !errors.Is(err, ErrNilOwner) {
		t.Fatalf("nil owner: got %v, want %v", err, ErrNilOwner)
	}
}

func TestNew_ClampsInitialAndFiresCreateOnce(t *testing.T) {
	rec := &recorder{}
	s := newTestSlider(t, NewOwner(), 99, rec, nil)

	if got := s.Value(); got != 10 {
		t.Fatalf("initial value: got %d, want %d", got, 10)
	}
	if len(rec.events) != 1 || rec.events[0] != EventCreate {
		t.Fatalf("events after create: got %v, want [create]", rec.events)
	}
	if got := rec.values[0]; got != 10 {
		t.Fatalf("create snapshot value: got %d, want %d", got, 10)
	}
	if got := s.Frame().HandleOffsetPx; got != 20 {
		t.Fatalf("handle offset at max: got %v, want %v", got, 20.0)
	}
	if s.Phase() != PhaseIdle {
		t.Fatalf("phase after create: got %v, want idle", s.Phase())
	}
}

func TestUpdate_NeverDispatches(t *testing.T) {
	rec := &recorder{}
	s := newTestSlider(t, NewOwner(), 0, rec, nil)
	rec.reset()

	f := s.Update(6)
	if f.Value != 6 || f.HandleOffsetPx != 12 {
		t.Fatalf("frame after update: got %+v", f)
	}
	if f := s.Update(-4); f.Value != 0 {
		t.Fatalf("update below min: got %d, want 0", f.Value)
	}
	if _, err := s.UpdateString(" 7.9 "); err != nil {
		t.Fatalf("update string: %v", err)
	}
	if got := s.Value(); got != 7 {
		t.Fatalf("value after update string: got %d, want %d", got, 7)
	}
	if len(rec.events) != 0 {
		t.Fatalf("programmatic updates dispatched: %v", rec.events)
	}
}

func TestUpdateString_RejectsNonNumeric(t *testing.T) {
	s := newTestSlider(t, NewOwner(), 4, nil, nil)

	_, err := s.UpdateString("four")
	if !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("err: got %v, want %v", err, ErrNotNumeric)
	}
	if got := s.Value(); got != 4 {
		t.Fatalf("value after bad string: got %d, want %d", got, 4)
	}

	if _, err := s.UpdateString("1e9"); err != nil {
		t.Fatalf("huge numeric string: %v", err)
	}
	if got := s.Value(); got != 10 {
		t.Fatalf("huge value clamp: got %d, want %d", got, 10)
	}
}

func TestResize_KeepsValueAndMovesRestingOffset(t *testing.T) {
	rec := &recorder{}
	s := newTestSlider(t, NewOwner(), 5, rec, nil)
	rec.reset()

	g1 := s.Resize(Measure{ContainerWidth: 41, HandleWidth: 1, ContainerLeft: 3})
	g2 := s.Resize(Measure{ContainerWidth: 41, HandleWidth: 1, ContainerLeft: 3})
	if g1 != g2 {
		t.Fatalf("repeated resize changed geometry: %+v vs %+v", g1, g2)
	}
	if got := s.Value(); got != 5 {
		t.Fatalf("value after resize: got %d, want %d", got, 5)
	}
	if got := s.Frame().HandleOffsetPx; got != 20 {
		t.Fatalf("offset after resize: got %v, want %v", got, 20.0)
	}
	if len(rec.events) != 0 {
		t.Fatalf("resize dispatched: %v", rec.events)
	}
}
