package main

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func newTestDemo(t *testing.T) model {
	t.Helper()
	entries, err := loadEntries("")
	if err != nil {
		t.Fatalf("load builtin: %v", err)
	}
	m, err := newModel(entries, log.New(io.Discard))
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	return next.(model)
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func TestDemo_CreatesEverySlider(t *testing.T) {
	m := newTestDemo(t)
	if got := m.status.events; got != 3 {
		t.Fatalf("create events: got %d, want %d", got, 3)
	}
	if m.focus != -1 {
		t.Fatalf("initial focus: got %d, want none", m.focus)
	}
	if got := m.rows[0].input.Value(); got != "40" {
		t.Fatalf("volume input: got %q, want %q", got, "40")
	}
}

func TestDemo_TabCyclesFocusAndArrowsStep(t *testing.T) {
	m := newTestDemo(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.rows[0].slider.Value(); got != 41 {
		t.Fatalf("volume: got %d, want %d", got, 41)
	}
	if got, want := m.status.last, "change volume=41 [0..100]"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
	if got := m.rows[1].slider.Value(); got != 0 {
		t.Fatalf("balance moved: got %d", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != 2 || m.rows[0].slider.Focused() {
		t.Fatalf("shift+tab: focus=%d volume focused=%v", m.focus, m.rows[0].slider.Focused())
	}
	// Temperature has the keyboard disabled.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.rows[2].slider.Value(); got != 21 {
		t.Fatalf("temperature: got %d, want %d", got, 21)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Fatalf("tab wraps: got %d, want %d", m.focus, 0)
	}
}

func TestDemo_ClickTrackTakesFocus(t *testing.T) {
	m := newTestDemo(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	bal := m.rows[1].slider
	x, y := bal.Position()
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if got := m.rows[1].slider.Value(); got != -1 {
		t.Fatalf("balance: got %d, want %d", got, -1)
	}
	if m.focus != 1 {
		t.Fatalf("focus after click: got %d, want %d", m.focus, 1)
	}
	if got := m.rows[0].slider.Value(); got != 40 {
		t.Fatalf("volume moved: got %d", got)
	}
}

func TestDemo_ViewAndQuit(t *testing.T) {
	m := newTestDemo(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	view := m.View()
	// Help lines stay whole at the 40-column test width.
	for _, want := range []string{"Volume", "focus: volume", "quit", "prev", "increase"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "…") {
		t.Fatalf("help truncated:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q: got nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q: got %T, want tea.QuitMsg", cmd())
	}
}
