package track

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Config configures a Slider. It is read once by New.
type Config struct {
	// Name identifies the slider in snapshots (the host input's id).
	Name string

	Range   Range
	Initial int

	// Keyboard enables arrow-key stepping.
	Keyboard bool

	// Measure is the initial layout; zero is allowed until the first Resize.
	Measure Measure

	Hooks Hooks

	// Report receives invariant violations. Nil logs them at error level
	// through the default charm logger.
	Report func(error)
}

// Slider is the state of one range control.
type Slider struct {
	name     string
	slot     int
	rng      Range
	keyboard bool

	owner  *Owner
	store  Store
	geo    Geometry
	hooks  Hooks
	report func(error)

	active    bool
	dragging  bool
	listening bool

	// absolutePx is the handle offset of the committed value.
	absolutePx float64
	// fuzzyPx is where inside the container the handle was grabbed.
	fuzzyPx float64
}

// New validates cfg, registers a slot with owner, computes the initial
// geometry and fires OnCreate.
//
// Max <= Min and Step <= 0 are rejected. An Initial outside the range is
// clamped.
func New(owner *Owner, cfg Config) (*Slider, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	if err := cfg.Range.Validate(); err != nil {
		return nil, fmt.Errorf("slider %q: %w", cfg.Name, err)
	}

	s := &Slider{
		name:     cfg.Name,
		slot:     owner.register(),
		rng:      cfg.Range,
		keyboard: cfg.Keyboard,
		owner:    owner,
		store:    NewStore(cfg.Range, cfg.Initial),
		hooks:    cfg.Hooks,
		report:   cfg.Report,
	}
	if s.report == nil {
		s.report = defaultReport
	}
	s.Resize(cfg.Measure)

	s.hooks.dispatch(EventCreate, s.Snapshot())
	return s, nil
}

func defaultReport(err error) {
	log.Error("slider diagnostic", "err", err)
}

func (s *Slider) Name() string { return s.name }
func (s *Slider) Slot() int { return s.slot }
func (s *Slider) Range() Range { return s.rng }
func (s *Slider) Value() int { return s.store.Value() }
func (s *Slider) Geometry() Geometry { return s.geo }
func (s *Slider) Keyboard() bool { return s.keyboard }
func (s *Slider) Active() bool { return s.active }
func (s *Slider) Dragging() bool { return s.dragging }

// Listening reports whether move and release events should be routed to this
// slider. It is true from a handle press until the matching release.
func (s *Slider) Listening() bool { return s.listening }

// Owned reports whether this slider holds the shared owner slot.
func (s *Slider) Owned() bool { return s.owner.Is(s.slot) }

func (s *Slider) Phase() Phase {
	switch {
	case s.dragging:
		return PhaseDragging
	case s.active:
		return PhaseOwned
	default:
		return PhaseIdle
	}
}

// Frame returns the current handle placement.
func (s *Slider) Frame() Frame {
	return s.geo.frame(s.rng, s.store.Value())
}

// Snapshot returns the hook payload for the current state.
func (s *Slider) Snapshot() Snapshot {
	return Snapshot{
		Name:  s.name,
		Slot:  s.slot,
		Min:   s.rng.Min,
		Max:   s.rng.Max,
		Value: s.store.Value(),
	}
}

// Resize recomputes geometry. It never changes the value.
//
// A resize during a drag changes the pixel scale mid-gesture; the handle may
// jump on the next move.
func (s *Slider) Resize(ms Measure) Geometry {
	s.geo = Recompute(ms, s.rng)
	s.absolutePx = s.geo.PixelOffset(s.rng, s.store.Value())
	return s.geo
}

// Focus claims the owner slot, as when the handle receives focus.
func (s *Slider) Focus() { s.owner.Claim(s.slot) }

// Blur gives up the owner slot if this slider holds it.
func (s *Slider) Blur() { s.owner.Release(s.slot) }

// Update sets the value programmatically. It clamps, repositions and never
// dispatches hooks.
func (s *Slider) Update(n int) Frame {
	s.commit(n)
	return s.Frame()
}

// UpdateString is Update for numeric strings. A fractional part is truncated
// toward zero. Non-numeric input leaves the value unchanged.
func (s *Slider) UpdateString(v string) (Frame, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) {
		return s.Frame(), fmt.Errorf("%w: %q", ErrNotNumeric, v)
	}
	switch {
	case f < float64(s.rng.Min):
		f = float64(s.rng.Min)
	case f > float64(s.rng.Max):
		f = float64(s.rng.Max)
	}
	return s.Update(int(math.Trunc(f))), nil
}

// commit stores n (clamped) and moves the handle's resting offset with it.
func (s *Slider) commit(n int) {
	s.store.Set(n)
	s.absolutePx = s.geo.PixelOffset(s.rng, s.store.Value())
}

func (s *Slider) violation(op, reason string) error {
	err := &InvariantError{Op: op, Slot: s.slot, Reason: reason}
	s.report(err)
	return err
}
