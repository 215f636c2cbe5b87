package colour

import (
	"strings"

	"github.com/arthur-debert/dzgen/pkg/dstring"
)

// FG wraps d in a foreground colour region: the colour is set before the
// body, the body is evaluated with the colour in its state, and on exit
// the surrounding state's colour is restored (^fg() resets to the
// renderer's default when none was set). Directives occupy no width, so
// the wrapped fragment measures the same as d.
func FG(c RGB, d dstring.DString) dstring.DString {
	return region("fg", c, d,
		func(st dstring.State) dstring.Colour { return st.Foreground },
		func(st *dstring.State) { st.Foreground = c },
	)
}

// BG is FG for the background colour, via ^bg().
func BG(c RGB, d dstring.DString) dstring.DString {
	return region("bg", c, d,
		func(st dstring.State) dstring.Colour { return st.Background },
		func(st *dstring.State) { st.Background = c },
	)
}

func region(name string, c RGB, d dstring.DString, outer func(dstring.State) dstring.Colour, set func(*dstring.State)) dstring.DString {
	width, known := d.Measure()
	return dstring.FromFunc(width, known, func(st dstring.State) string {
		inner := st
		set(&inner)

		var sb strings.Builder
		sb.WriteString("^" + name + "(" + c.Dzen() + ")")
		sb.WriteString(d.Eval(inner))
		if prev := outer(st); prev != nil {
			sb.WriteString("^" + name + "(" + prev.Dzen() + ")")
		} else {
			sb.WriteString("^" + name + "()")
		}
		return sb.String()
	})
}

// KeepBackground turns background painting on for the body: graphical
// directives inside it are drawn over the background colour. Emits
// ^ib(0) before and restores the surrounding flag after.
func KeepBackground(d dstring.DString) dstring.DString {
	width, known := d.Measure()
	return dstring.FromFunc(width, known, func(st dstring.State) string {
		inner := st
		inner.IgnoreBackground = false

		var sb strings.Builder
		sb.WriteString("^ib(0)")
		sb.WriteString(d.Eval(inner))
		if st.IgnoreBackground {
			sb.WriteString("^ib(1)")
		} else {
			sb.WriteString("^ib(0)")
		}
		return sb.String()
	})
}
