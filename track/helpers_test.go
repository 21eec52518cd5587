package track

import (
	"errors"
	"testing"
)

type recorder struct {
	events []Event
	values []int
}

func (r *recorder) hooks() Hooks {
	rec := func(ev Event) func(Snapshot) {
		return func(s Snapshot) {
			r.events = append(r.events, ev)
			r.values = append(r.values, s.Value)
		}
	}
	return Hooks{
		OnCreate: rec(EventCreate),
		OnStart:  rec(EventStart),
		OnChange: rec(EventChange),
		OnFinish: rec(EventFinish),
	}
}

func (r *recorder) reset() {
	r.events = nil
	r.values = nil
}

func (r *recorder) count(ev Event) int {
	n := 0
	for _, e := range r.events {
		if e == ev {
			n++
		}
	}
	return n
}

type reports struct{ errs []error }

func (r *reports) report(err error) { r.errs = append(r.errs, err) }

// A 0..10 slider in a 21-cell container with a 1-cell handle: 2 cells per unit.
func newTestSlider(t *testing.T, owner *Owner, initial int, rec *recorder, rep *reports) *Slider {
	t.Helper()
	cfg := Config{
		Name:     "s",
		Range:    Range{Min: 0, Max: 10, Step: 1},
		Initial:  initial,
		Keyboard: true,
		Measure:  Measure{ContainerWidth: 21, HandleWidth: 1},
	}
	if rec != nil {
		cfg.Hooks = rec.hooks()
	}
	if rep != nil {
		cfg.Report = rep.report
	} else {
		cfg.Report = func(err error) { t.Fatalf("unexpected diagnostic: %v", err) }
	}
	s, err := New(owner, cfg)
	if err != nil {
		t.Fatalf("new slider: %v", err)
	}
	return s
}

func isInvariant(err error) bool {
	var ie *InvariantError
	return errors.Is(err, ErrInvariant) && errors.As(err, &ie)
}
