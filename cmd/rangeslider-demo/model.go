package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/rangeslider/nowrap"
	"github.com/iw2rmb/rangeslider/slider"
	"github.com/iw2rmb/rangeslider/track"
)

const (
	defaultWidth = 60
	inputWidth   = 5
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type status struct {
	events int
	last   string
}

func (s *status) record(kind string) func(slider.Event) {
	return func(ev slider.Event) {
		s.events++
		s.last = fmt.Sprintf("%s %s=%d [%d..%d]", kind, ev.ID, ev.Value, ev.Min, ev.Max)
	}
}

type row struct {
	label     string
	input     *textinput.Model
	slider    slider.Model
	showInput bool
	fixed     bool
}

type model struct {
	rows   []row
	focus  int
	status *status
	keys   keyMap
	help   help.Model
	width  int

	labelStyle  lipgloss.Style
	statusStyle lipgloss.Style
}

func newModel(entries []entry, logger *log.Logger) (model, error) {
	owner := track.NewOwner()
	st := &status{}
	m := model{
		focus:       -1,
		status:      st,
		keys:        defaultKeyMap(),
		help:        help.New(),
		labelStyle:  lipgloss.NewStyle().Bold(true),
		statusStyle: lipgloss.NewStyle().Faint(true),
	}

	for _, e := range entries {
		cfg := e.Apply(slider.DefaultConfig())
		cfg.Logger = logger
		cfg.OnCreate = st.record("create")
		cfg.OnStart = st.record("start")
		cfg.OnChange = st.record("change")
		cfg.OnFinish = st.record("finish")

		in := textinput.New()
		in.Prompt = ""
		in.Width = inputWidth
		s, err := slider.New(&in, owner, cfg)
		if err != nil {
			return model{}, fmt.Errorf("slider %q: %w", cfg.ID, err)
		}
		m.rows = append(m.rows, row{
			label:     e.Label,
			input:     &in,
			slider:    s,
			showInput: cfg.ShowInput,
			fixed:     e.Width != nil,
		})
	}
	return m.layout(defaultWidth), nil
}

// layout stacks each label above its slider with a blank line between rows.
func (m model) layout(width int) model {
	m.width = width
	y := 0
	for i := range m.rows {
		r := &m.rows[i]
		y += len(nowrap.Wrap(r.label, width))
		r.slider = r.slider.SetPosition(0, y)
		if !r.fixed {
			w := width
			if r.showInput {
				w -= inputWidth + 2
			}
			r.slider = r.slider.SetSize(w)
		}
		y += 2
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m.layout(msg.Width), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.cycle(1), nil
		case key.Matches(msg, m.keys.Prev):
			return m.cycle(-1), nil
		}
	}

	// Sliders share one owner, so only the focused one reacts to keys.
	for i := range m.rows {
		m.rows[i].slider, _ = m.rows[i].slider.Update(msg)
	}
	m.focus = m.focused()
	return m, nil
}

func (m model) cycle(delta int) model {
	n := len(m.rows)
	if n == 0 {
		return m
	}
	next := 0
	switch {
	case m.focus >= 0:
		next = ((m.focus+delta)%n + n) % n
		m.rows[m.focus].slider = m.rows[m.focus].slider.Blur()
	case delta < 0:
		next = n - 1
	}
	m.rows[next].slider = m.rows[next].slider.Focus()
	m.focus = next
	return m
}

func (m model) focused() int {
	for i, r := range m.rows {
		if r.slider.Focused() {
			return i
		}
	}
	return -1
}

func (m model) View() string {
	var b strings.Builder
	for _, r := range m.rows {
		if r.label != "" {
			b.WriteString(nowrap.Render(r.label, m.width, m.labelStyle))
			b.WriteByte('\n')
		}
		b.WriteString(r.slider.View())
		b.WriteString("\n\n")
	}
	b.WriteString(m.statusStyle.Render(m.statusLine()))
	b.WriteByte('\n')
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Quit, m.keys.Next, m.keys.Prev}))
	if len(m.rows) > 0 {
		b.WriteByte('\n')
		b.WriteString(m.help.ShortHelpView(m.rows[0].slider.KeyMap().ShortHelp()))
	}

	view := b.String()
	for _, r := range m.rows {
		view = r.slider.Tooltip(view)
	}
	return view
}

func (m model) statusLine() string {
	focus := "none"
	if m.focus >= 0 {
		focus = m.rows[m.focus].slider.ID()
	}
	return fmt.Sprintf("focus: %s  events: %d  last: %s", focus, m.status.events, m.status.last)
}
