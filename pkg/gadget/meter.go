package gadget

import (
	"github.com/arthur-debert/dzgen/pkg/colour"
	"github.com/arthur-debert/dzgen/pkg/dstring"
)

// MeterStyle controls how Meter draws its segments.
type MeterStyle struct {
	// Segments is the number of cells; SegWidth and Height size each cell
	// in pixels.
	Segments int
	SegWidth int
	Height   int
	// Gap is the pixel spacing between cells.
	Gap int
}

// DefaultMeterStyle renders ten 4x10 cells with a 2px gap.
func DefaultMeterStyle() MeterStyle {
	return MeterStyle{Segments: 10, SegWidth: 4, Height: 10, Gap: 2}
}

// Meter draws frac (clamped to [0,1]) as a row of filled cells followed by
// outlines, in the classic dzen percentage-bar fashion. The result is
// graphical, so its width is unknown.
func Meter(style MeterStyle, frac float64) dstring.DString {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(style.Segments) + 0.5)

	var parts []dstring.DString
	for i := 0; i < style.Segments; i++ {
		if i > 0 && style.Gap > 0 {
			parts = append(parts, Shift(style.Gap))
		}
		if i < filled {
			parts = append(parts, Rect(style.SegWidth, style.Height))
		} else {
			parts = append(parts, RectOutline(style.SegWidth, style.Height))
		}
	}
	return dstring.Join(parts...)
}

// ShadedMeter is Meter with the filled cells coloured along a ramp from
// low (frac 0) to high (frac 1).
func ShadedMeter(style MeterStyle, low, high colour.RGB, frac float64) dstring.DString {
	return colour.FG(colour.Ramp(low, high, frac), Meter(style, frac))
}
