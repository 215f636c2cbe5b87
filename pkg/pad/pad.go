// Package pad aligns annotated strings to a fixed visible width with
// spaces. Fragments whose width is unknown (graphical content) or already
// at least the target width pass through unchanged.
package pad

import (
	"strings"

	"github.com/arthur-debert/dzgen/pkg/dstring"
)

// Left pads on the left, right-aligning d in the given width.
func Left(width int, d dstring.DString) dstring.DString {
	n, ok := d.Measure()
	if !ok || n >= width {
		return d
	}
	return dstring.Concat(spaces(width-n), d)
}

// Right pads on the right, left-aligning d in the given width.
func Right(width int, d dstring.DString) dstring.DString {
	n, ok := d.Measure()
	if !ok || n >= width {
		return d
	}
	return dstring.Concat(d, spaces(width-n))
}

// Center pads on both sides. When the padding is odd the extra space goes
// on the left.
func Center(width int, d dstring.DString) dstring.DString {
	n, ok := d.Measure()
	if !ok || n >= width {
		return d
	}
	total := width - n
	left := total - total/2
	return dstring.Join(spaces(left), d, spaces(total-left))
}

func spaces(n int) dstring.DString {
	return dstring.FromText(strings.Repeat(" ", n))
}
