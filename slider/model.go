package slider

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rangeslider/internal/grapheme"
	"github.com/iw2rmb/rangeslider/track"
)

var ErrNilInput = errors.New("slider: input is nil")

// Model is a Bubble Tea component that renders a range slider bound to a
// textinput.
//
// Copies of a Model share the slider state and the bound input.
type Model struct {
	cfg   Config
	core  *track.Slider
	input *textinput.Model

	width int
	x, y  int
}

// New binds a slider to input. The input is blurred and is never forwarded
// messages from this Model: it becomes a read-only mirror of the value.
//
// Every slider that competes for keyboard and click focus must share owner.
// Construction fails for Max <= Min or Step <= 0; an InitialValue outside
// the range is clamped. OnCreate fires before New returns.
func New(input *textinput.Model, owner *track.Owner, cfg Config) (Model, error) {
	if input == nil {
		return Model{}, ErrNilInput
	}
	cfg.Style = cfg.Style.withGlyphDefaults()
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}

	input.Blur()
	m := Model{
		cfg:   cfg,
		input: input,
		width: cfg.Width,
		x:     cfg.X,
		y:     cfg.Y,
	}

	core, err := track.New(owner, track.Config{
		Name: cfg.ID,
		Range: track.Range{
			Min:  cfg.Min,
			Max:  cfg.Max,
			Step: cfg.Step,
		},
		Initial:  cfg.InitialValue,
		Keyboard: cfg.Keyboard,
		Measure:  m.measure(),
		Hooks:    m.hooks(),
		Report:   reporter(cfg.Logger, cfg.ID),
	})
	if err != nil {
		return Model{}, err
	}
	m.core = core
	m.mirror()
	return m, nil
}

// hooks wraps the configured callbacks. The input is updated before any
// callback runs so hooks observe the new value through Event.Input.
func (m Model) hooks() track.Hooks {
	input := m.input
	wrap := func(fn func(Event)) func(track.Snapshot) {
		return func(s track.Snapshot) {
			input.SetValue(strconv.Itoa(s.Value))
			if fn != nil {
				fn(buildEvent(input, s))
			}
		}
	}
	return track.Hooks{
		OnCreate: wrap(m.cfg.OnCreate),
		OnStart:  wrap(m.cfg.OnStart),
		OnChange: wrap(m.cfg.OnChange),
		OnFinish: wrap(m.cfg.OnFinish),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) ID() string { return m.cfg.ID }
func (m Model) Value() int { return m.core.Value() }
func (m Model) Input() *textinput.Model { return m.input }
func (m Model) Phase() track.Phase { return m.core.Phase() }
func (m Model) Geometry() track.Geometry { return m.core.Geometry() }
func (m Model) Snapshot() Event { return buildEvent(m.input, m.core.Snapshot()) }
func (m Model) Position() (x int, y int) { return m.x, m.y }
func (m Model) Width() int { return m.width }
func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }
func (m Model) Dragging() bool { return m.core.Dragging() }
func (m Model) Focused() bool { return m.core.Owned() }

// Focus gives the handle keyboard focus, taking the shared owner slot.
func (m Model) Focus() Model {
	m.core.Focus()
	return m
}

func (m Model) Blur() Model {
	m.core.Blur()
	return m
}

// SetValue sets the value programmatically. It clamps, repositions the handle
// and never fires hooks.
func (m Model) SetValue(v int) Model {
	m.core.Update(v)
	m.mirror()
	return m
}

// SetValueString is SetValue for numeric strings such as the text of another
// input. Non-numeric strings leave the value unchanged and return an error.
func (m Model) SetValueString(v string) (Model, error) {
	if _, err := m.core.UpdateString(v); err != nil {
		return m, err
	}
	m.mirror()
	return m, nil
}

// SetSize sets the container's outer width (margins included) and recomputes
// the layout.
func (m Model) SetSize(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.core.Resize(m.measure())
	return m
}

// SetPosition moves the container's top-left corner and recomputes the layout.
func (m Model) SetPosition(x, y int) Model {
	m.x, m.y = x, y
	m.core.Resize(m.measure())
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := m.width
		if m.cfg.Width == 0 {
			width = msg.Width - m.x
		}
		return m.SetSize(width), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.BlurMsg:
		// The release of a drag in progress will never arrive.
		m.core.Cancel()
		m.mirror()
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	container := m.renderContainer()
	if !m.cfg.ShowInput {
		return container
	}
	return container + " " + m.input.View()
}

func (m Model) measure() track.Measure {
	st := m.cfg.Style
	outer := m.width - st.Container.GetHorizontalMargins()
	if outer < 0 {
		outer = 0
	}
	return track.Measure{
		ContainerWidth: float64(outer),
		HandleWidth:    float64(m.handleWidth()),
		ContainerLeft:  float64(m.x + st.Container.GetMarginLeft()),
	}
}

func (m Model) handleWidth() int {
	st := m.cfg.Style
	return grapheme.Width(st.HandleGlyph) + st.Handle.GetHorizontalFrameSize()
}

func (m Model) mirror() {
	m.input.SetValue(strconv.Itoa(m.core.Value()))
}
