package gadget

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/dzgen/pkg/colour"
	"github.com/arthur-debert/dzgen/pkg/dstring"
	"github.com/arthur-debert/dzgen/pkg/printer"
	"github.com/stretchr/testify/assert"
)

func TestShapes(t *testing.T) {
	assert.Equal(t, "^ib(1)^r(4x10)", Rect(4, 10).Render())
	assert.Equal(t, "^ib(1)^ro(4x10)", RectOutline(4, 10).Render())
	assert.Equal(t, "^ib(1)^c(5)", Circle(5).Render())
	assert.Equal(t, "^ib(1)^co(5)", CircleOutline(5).Render())
	assert.Equal(t, "^ib(1)^i(/tmp/cpu.xbm)", Icon("/tmp/cpu.xbm").Render())
	assert.Equal(t, "^ib(1)^p(-3)", Shift(-3).Render())
	assert.Equal(t, "^ib(1)^pa(120)", AbsPos(120).Render())

	for _, d := range []dstring.DString{Rect(1, 1), Icon("x"), Shift(1)} {
		_, ok := d.Measure()
		assert.False(t, ok, "drawing directives have unknown width")
	}
}

func TestClickArea(t *testing.T) {
	d := ClickArea(1, "xterm -e htop", dstring.FromText("cpu"))
	assert.Equal(t, "^ib(1)^ca(1,xterm -e htop)cpu^ca()", d.Render())

	w, ok := d.Measure()
	assert.True(t, ok)
	assert.Equal(t, 3, w, "click markers add no width")
}

func TestMeterSegments(t *testing.T) {
	style := MeterStyle{Segments: 4, SegWidth: 3, Height: 8, Gap: 0}

	tests := []struct {
		frac     float64
		filled   int
		outlined int
	}{
		{0, 0, 4},
		{0.5, 2, 2},
		{1, 4, 0},
		{-1, 0, 4}, // clamped
		{2, 4, 0},  // clamped
	}
	for _, tt := range tests {
		out := Meter(style, tt.frac).Render()
		assert.Equal(t, tt.filled, strings.Count(out, "^r(3x8)"), "frac %v", tt.frac)
		assert.Equal(t, tt.outlined, strings.Count(out, "^ro(3x8)"), "frac %v", tt.frac)
	}
}

func TestMeterGap(t *testing.T) {
	style := MeterStyle{Segments: 3, SegWidth: 2, Height: 6, Gap: 2}
	out := Meter(style, 0).Render()
	assert.Equal(t, 2, strings.Count(out, "^p(2)"), "gaps go between cells only")
}

func TestShadedMeterWrapsInColour(t *testing.T) {
	style := MeterStyle{Segments: 2, SegWidth: 2, Height: 6, Gap: 0}
	out := ShadedMeter(style, colour.Green, colour.Red, 1).Render()
	assert.True(t, strings.HasPrefix(out, "^ib(1)^fg(#ff0000)"), out)
	assert.True(t, strings.HasSuffix(out, "^fg()"), out)
}

func fmtAvg(v float64) dstring.DString {
	return dstring.FromText(fmt.Sprintf("%.1f", v))
}

func TestSmooth(t *testing.T) {
	p := Smooth(2, fmtAvg)
	outs, _ := printer.ApplyMany(p, []float64{1, 3, 5})
	// 1; (1+3)/2; (3+5)/2
	assert.Equal(t, []string{"^ib(1)1.0", "^ib(1)2.0", "^ib(1)4.0"}, outs)
}

func TestSmoothSuccessorsDoNotAlias(t *testing.T) {
	p := Smooth(3, fmtAvg)
	_, next := printer.Apply(p, 6)

	// Branching two futures from the same successor must not interfere.
	left, _ := printer.Apply(next, 0)
	right, _ := printer.Apply(next, 12)
	assert.Equal(t, "^ib(1)3.0", left)
	assert.Equal(t, "^ib(1)9.0", right)
}

func TestDelta(t *testing.T) {
	p := Delta(fmtAvg)
	outs, _ := printer.ApplyMany(p, []float64{10, 12, 11})
	assert.Equal(t, []string{"^ib(1)0.0", "^ib(1)2.0", "^ib(1)-1.0"}, outs)
}

func TestBlink(t *testing.T) {
	p := Blink[int](2, dstring.FromText("!!"))
	outs, _ := printer.ApplyMany(p, []int{0, 0, 0, 0, 0})
	assert.Equal(t, []string{
		"^ib(1)!!", "^ib(1)!!", "^ib(1)  ", "^ib(1)  ", "^ib(1)!!",
	}, outs)
}

func TestBlinkUnknownWidthBlanksToNothing(t *testing.T) {
	p := Blink[int](1, Rect(2, 2))
	outs, _ := printer.ApplyMany(p, []int{0, 0})
	assert.Equal(t, []string{"^ib(1)^r(2x2)", "^ib(1)"}, outs)
}
