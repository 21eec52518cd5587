package nowrap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rangeslider/internal/grapheme"
)

// Run is one group of text: either a word (no whitespace) or a single
// whitespace cluster.
type Run struct {
	Text  string
	Space bool
	// Width is the terminal cell width of Text.
	Width int
}

// Group trims text and splits it into runs. Each whitespace cluster becomes
// its own run; consecutive non-space clusters form one word run.
func Group(text string) []Run {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var runs []Run
	var word strings.Builder
	wordWidth := 0
	flush := func() {
		if word.Len() == 0 {
			return
		}
		runs = append(runs, Run{Text: word.String(), Width: wordWidth})
		word.Reset()
		wordWidth = 0
	}

	for _, c := range grapheme.Split(text) {
		if grapheme.IsSpace(c) {
			flush()
			runs = append(runs, Run{Text: c, Space: true, Width: spaceWidth(c)})
			continue
		}
		word.WriteString(c)
		wordWidth += grapheme.ClusterWidth(c)
	}
	flush()
	return runs
}

// Wrap lays the runs of text out into lines no wider than width, breaking
// only at whitespace. A word wider than width gets a line of its own and is
// not split. Newlines in text force a break. Width <= 0 disables wrapping.
func Wrap(text string, width int) []string {
	lines := wrapRuns(Group(text), width)
	out := make([]string, len(lines))
	for i, line := range lines {
		var sb strings.Builder
		for _, r := range line {
			sb.WriteString(r.Text)
		}
		out[i] = sb.String()
	}
	return out
}

// Render is Wrap with every word rendered through style. Whitespace between
// words is left unstyled.
func Render(text string, width int, style lipgloss.Style) string {
	lines := wrapRuns(Group(text), width)
	out := make([]string, len(lines))
	for i, line := range lines {
		var sb strings.Builder
		for _, r := range line {
			if r.Space {
				sb.WriteString(r.Text)
				continue
			}
			sb.WriteString(style.Render(r.Text))
		}
		out[i] = sb.String()
	}
	return strings.Join(out, "\n")
}

func wrapRuns(runs []Run, width int) [][]Run {
	if len(runs) == 0 {
		return nil
	}

	var lines [][]Run
	var cur []Run
	curWidth := 0
	pendingSpace := []Run(nil)
	pendingWidth := 0

	breakLine := func() {
		lines = append(lines, cur)
		cur = nil
		curWidth = 0
		pendingSpace = nil
		pendingWidth = 0
	}

	for _, r := range runs {
		if r.Space {
			if r.Text == "\n" || r.Text == "\r\n" {
				breakLine()
				continue
			}
			// Spaces are only placed once the next word is known to fit.
			if len(cur) > 0 {
				pendingSpace = append(pendingSpace, r)
				pendingWidth += r.Width
			}
			continue
		}

		if width > 0 && len(cur) > 0 && curWidth+pendingWidth+r.Width > width {
			breakLine()
		}
		cur = append(cur, pendingSpace...)
		curWidth += pendingWidth
		pendingSpace = nil
		pendingWidth = 0

		cur = append(cur, r)
		curWidth += r.Width
	}
	lines = append(lines, cur)
	return lines
}

func spaceWidth(c string) int {
	if c == "\n" || c == "\r\n" {
		return 0
	}
	if w := grapheme.ClusterWidth(c); w > 0 {
		return w
	}
	return 1
}
