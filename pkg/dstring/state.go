package dstring

// Colour is any value with a dzen spelling, e.g. "#ff8800" or "red".
// Implementations live in pkg/colour; the interface is defined here so that
// State can carry colours without importing them.
type Colour interface {
	// Dzen returns the colour as dzen2 expects it inside ^fg()/^bg().
	Dzen() string
}

// State is the ambient style context a DString is evaluated under. It flows
// top-down into evaluation and is never mutated: wrappers that change it
// (colour regions, background toggles) build a modified copy for their body.
type State struct {
	// Foreground and Background are the colours currently in effect, or nil
	// when unset. A colour region restores the surrounding value on exit.
	Foreground Colour
	Background Colour

	// IgnoreBackground mirrors dzen's ^ib flag: when true, graphical
	// directives do not paint the background colour behind them.
	IgnoreBackground bool
}

// DefaultState is the state every render starts from: no colours set and
// background painting ignored, matching the ^ib(1) prefix Render emits.
func DefaultState() State {
	return State{IgnoreBackground: true}
}
