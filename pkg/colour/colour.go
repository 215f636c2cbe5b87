// Package colour provides colour values for dzen markup and the region
// combinators that apply them to annotated strings.
package colour

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit colour. It implements dstring.Colour, spelled the way
// dzen's ^fg()/^bg() directives expect ("#rrggbb").
type RGB struct {
	c colorful.Color
}

// Hex parses "#rrggbb" or "#rgb".
func Hex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return RGB{c: c}, nil
}

// MustHex is Hex for literals; it panics on a malformed string.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful wraps a colorful.Color (values are clamped to [0,1]).
func FromColorful(c colorful.Color) RGB {
	return RGB{c: c.Clamped()}
}

// Colorful exposes the underlying colour for further blending or
// conversion.
func (r RGB) Colorful() colorful.Color {
	return r.c
}

// Dzen returns the "#rrggbb" spelling used inside colour directives.
func (r RGB) Dzen() string {
	return r.c.Hex()
}

// Ramp blends from towards to in a perceptually even colour space.
// t is clamped to [0,1]; 0 yields from, 1 yields to. Useful for meters
// that shade with their value.
func Ramp(from, to RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{c: from.c.BlendLuv(to.c, t).Clamped()}
}

// Common colours.
var (
	Black   = MustHex("#000000")
	White   = MustHex("#ffffff")
	Red     = MustHex("#ff0000")
	Green   = MustHex("#00ff00")
	Blue    = MustHex("#0000ff")
	Yellow  = MustHex("#ffff00")
	Cyan    = MustHex("#00ffff")
	Magenta = MustHex("#ff00ff")
	Grey    = MustHex("#808080")
	Orange  = MustHex("#ffa500")
)
