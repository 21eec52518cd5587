// Package track implements the pure state model of a single-handle range
// slider: layout geometry, the clamped integer value, the pointer gesture
// state machine, one-step keyboard/click adjustments, and lifecycle hooks.
//
// Coordinates are float64 cell (pixel) positions in the host's screen space.
// Every transition returns a Frame describing where the handle belongs; the
// package never renders anything itself.
//
// Types in this package are not safe for concurrent use. They are meant to be
// driven from a single event loop.
package track
