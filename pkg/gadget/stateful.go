package gadget

import (
	"github.com/arthur-debert/dzgen/pkg/dstring"
	"github.com/arthur-debert/dzgen/pkg/printer"
)

// Smooth averages the last window samples before formatting, taming jumpy
// inputs like load averages. Until the window fills, the average is over
// the samples seen so far.
func Smooth(window int, format func(float64) dstring.DString) printer.Printer[float64] {
	if window < 1 {
		window = 1
	}
	step := func(mem []float64, in float64) (dstring.DString, []float64) {
		next := make([]float64, 0, window)
		if len(mem) == window {
			next = append(next, mem[1:]...)
		} else {
			next = append(next, mem...)
		}
		next = append(next, in)

		sum := 0.0
		for _, v := range next {
			sum += v
		}
		return format(sum / float64(len(next))), next
	}
	return printer.Stateful(step, nil)
}

// Delta formats the difference between each sample and the previous one.
// The first sample reports a delta of zero.
func Delta(format func(float64) dstring.DString) printer.Printer[float64] {
	type mem struct {
		prev float64
		seen bool
	}
	step := func(m mem, in float64) (dstring.DString, mem) {
		d := 0.0
		if m.seen {
			d = in - m.prev
		}
		return format(d), mem{prev: in, seen: true}
	}
	return printer.Stateful(step, mem{})
}

// Blink shows d on every other period of applications and a same-width
// blank in between, so surrounding layout stays put. A fragment of unknown
// width blanks to nothing.
func Blink[A any](period int, d dstring.DString) printer.Printer[A] {
	if period < 1 {
		period = 1
	}
	blank := dstring.Empty()
	if w, ok := d.Measure(); ok {
		blank = pad(w)
	}
	step := func(tick int, _ A) (dstring.DString, int) {
		out := d
		if (tick/period)%2 == 1 {
			out = blank
		}
		return out, tick + 1
	}
	return printer.Stateful(step, 0)
}

func pad(n int) dstring.DString {
	s := make([]byte, n)
	for i := range s {
		s[i] = ' '
	}
	return dstring.FromText(string(s))
}
