package slider

import (
	"testing"

	"github.com/iw2rmb/rangeslider/track"
)

func TestHitTest_Regions(t *testing.T) {
	cfg := testConfig(nil, nil)
	cfg.X = 4
	cfg.Y = 3
	cfg.InitialValue = 3
	m, _ := newTestModel(t, track.NewOwner(), cfg)

	// Handle sits at 4 + 6.
	tests := []struct {
		x, y int
		want region
	}{
		{10, 3, regionHandle},
		{4, 3, regionTrack},
		{9, 3, regionTrack},
		{11, 3, regionTrack},
		{24, 3, regionTrack},
		{25, 3, regionNone},
		{3, 3, regionNone},
		{10, 2, regionNone},
		{10, 4, regionNone},
	}
	for _, tt := range tests {
		if got := m.hitTest(tt.x, tt.y); got != tt.want {
			t.Fatalf("hitTest(%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenValueMapping(t *testing.T) {
	cfg := testConfig(nil, nil)
	cfg.X = 4
	m, _ := newTestModel(t, track.NewOwner(), cfg)

	if got := m.ValueToScreen(7); got != 18 {
		t.Fatalf("ValueToScreen(7): got %d, want %d", got, 18)
	}
	if got := m.ValueToScreen(99); got != 24 {
		t.Fatalf("ValueToScreen(99): got %d, want %d", got, 24)
	}
	for x, want := range map[int]int{18: 7, 19: 8, 3: 0, 80: 10} {
		got, ok := m.ScreenToValue(x)
		if !ok || got != want {
			t.Fatalf("ScreenToValue(%d): got %d,%v, want %d", x, got, ok, want)
		}
	}

	cfg.Width = 1
	m, _ = newTestModel(t, track.NewOwner(), cfg)
	if _, ok := m.ScreenToValue(4); ok {
		t.Fatalf("ScreenToValue without travel: got ok")
	}
}
