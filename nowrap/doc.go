// Package nowrap groups text into whitespace-delimited runs and wraps lines
// only between runs, so that a run (for example a Korean word) is never split
// across lines.
//
// It is independent of the slider packages and is typically used for labels
// rendered next to them.
package nowrap
