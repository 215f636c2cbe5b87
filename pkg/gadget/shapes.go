// Package gadget provides ready-made dzen widgets: directive wrappers for
// the renderer's drawing surface (rects, circles, icons, click areas) and
// small stateful printers (moving averages, deltas, blinkers).
package gadget

import (
	"fmt"

	"github.com/arthur-debert/dzgen/pkg/dstring"
)

// Rect draws a filled w-by-h rectangle.
func Rect(w, h int) dstring.DString {
	return dstring.Command(true, "r", fmt.Sprintf("%dx%d", w, h))
}

// RectOutline draws a rectangle outline.
func RectOutline(w, h int) dstring.DString {
	return dstring.Command(true, "ro", fmt.Sprintf("%dx%d", w, h))
}

// Circle draws a filled circle of the given radius.
func Circle(radius int) dstring.DString {
	return dstring.Command(true, "c", fmt.Sprintf("%d", radius))
}

// CircleOutline draws a circle outline.
func CircleOutline(radius int) dstring.DString {
	return dstring.Command(true, "co", fmt.Sprintf("%d", radius))
}

// Icon places an XBM/XPM image from the given path.
func Icon(path string) dstring.DString {
	return dstring.Command(true, "i", path)
}

// Shift moves the drawing position right by dx pixels (left if negative).
func Shift(dx int) dstring.DString {
	return dstring.Command(true, "p", fmt.Sprintf("%d", dx))
}

// AbsPos jumps to an absolute x position.
func AbsPos(x int) dstring.DString {
	return dstring.Command(true, "pa", fmt.Sprintf("%d", x))
}

// ClickArea makes d clickable: the command runs when the given mouse
// button (1-5) is pressed over it. The body's width is preserved.
func ClickArea(button int, command string, d dstring.DString) dstring.DString {
	return dstring.Join(
		dstring.Command(false, "ca", fmt.Sprintf("%d,%s", button, command)),
		d,
		dstring.Command(false, "ca", ""),
	)
}
