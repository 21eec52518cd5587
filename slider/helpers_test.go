package slider

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/rangeslider/track"
)

func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Container:      r.NewStyle(),
		Track:          r.NewStyle(),
		Fill:           r.NewStyle(),
		Handle:         r.NewStyle(),
		HandleFocused:  r.NewStyle(),
		HandleDragging: r.NewStyle(),
		Tooltip:        r.NewStyle(),
		TrackGlyph:     "-",
		FillGlyph:      "=",
		HandleGlyph:    "O",
	}
}

type eventLog struct {
	kinds  []string
	values []int
}

func (l *eventLog) record(kind string) func(Event) {
	return func(ev Event) {
		l.kinds = append(l.kinds, kind)
		l.values = append(l.values, ev.Value)
	}
}

func (l *eventLog) reset() {
	l.kinds = nil
	l.values = nil
}

func (l *eventLog) count(kind string) int {
	n := 0
	for _, k := range l.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// testConfig is a 0..10 slider whose 21-cell row starts at (0,0): the 1-cell
// handle moves 2 cells per unit.
func testConfig(events *eventLog, diag *bytes.Buffer) Config {
	cfg := Config{
		ID:       "volume",
		Min:      0,
		Max:      10,
		Step:     1,
		Keyboard: true,
		Width:    21,
		Style:    plainStyle(),
	}
	if events != nil {
		cfg.OnCreate = events.record("create")
		cfg.OnStart = events.record("start")
		cfg.OnChange = events.record("change")
		cfg.OnFinish = events.record("finish")
	}
	if diag != nil {
		cfg.Logger = log.New(diag)
	} else {
		cfg.Logger = log.New(io.Discard)
	}
	return cfg
}

func newTestModel(t *testing.T, owner *track.Owner, cfg Config) (Model, *textinput.Model) {
	t.Helper()
	in := textinput.New()
	m, err := New(&in, owner, cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m, &in
}
