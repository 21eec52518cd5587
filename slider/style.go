package slider

import "github.com/charmbracelet/lipgloss"

// Style controls the slider's rendering.
//
// Container contributes margins only; its padding, border and width are
// ignored so the measured container is exactly the track row. Track and fill
// glyphs must be one cell wide. The handle's width is its glyph width plus
// the Handle style's horizontal padding and border.
type Style struct {
	Container lipgloss.Style

	Track lipgloss.Style
	Fill  lipgloss.Style

	Handle         lipgloss.Style
	HandleFocused  lipgloss.Style
	HandleDragging lipgloss.Style

	// Tooltip renders the value shown above the handle during a drag.
	Tooltip lipgloss.Style

	TrackGlyph  string
	FillGlyph   string
	HandleGlyph string

	// FillFrom and FillTo, when both are hex colors, blend the fill
	// foreground from left to right.
	FillFrom string
	FillTo   string
}

const (
	defaultTrackGlyph  = "─"
	defaultFillGlyph   = "━"
	defaultHandleGlyph = "●"
)

func DefaultStyle() Style {
	return Style{
		Container:      lipgloss.NewStyle(),
		Track:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Fill:           lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Handle:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		HandleFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		HandleDragging: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tooltip:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		TrackGlyph:     defaultTrackGlyph,
		FillGlyph:      defaultFillGlyph,
		HandleGlyph:    defaultHandleGlyph,
	}
}

func (s Style) withGlyphDefaults() Style {
	if s.TrackGlyph == "" {
		s.TrackGlyph = defaultTrackGlyph
	}
	if s.FillGlyph == "" {
		s.FillGlyph = defaultFillGlyph
	}
	if s.HandleGlyph == "" {
		s.HandleGlyph = defaultHandleGlyph
	}
	return s
}
