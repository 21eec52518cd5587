// Package slider provides a Bubble Tea range slider bound to a host numeric
// input (a bubbles textinput).
//
// The slider renders one container row (track and handle) in front of the
// input, takes keyboard focus in its place and mirrors its value into it.
// State transitions live in the track package; this package measures the
// layout from lipgloss styles, routes mouse and key messages, and renders.
package slider
