package printer

import (
	"github.com/arthur-debert/dzgen/pkg/dstring"
)

// Apply performs one step: the printer is applied under the default state
// and the fragment is rendered to the final line, ^ib(1) prefix included.
// Continue with the returned successor.
func Apply[A any](p Printer[A], in A) (string, Printer[A]) {
	d, next := p.Print(dstring.DefaultState(), in)
	return d.Render(), next
}

// ApplyMany folds Apply across the inputs left to right, threading the
// successor. It returns one rendered line per input, in input order, and
// the final printer for continued use.
func ApplyMany[A any](p Printer[A], inputs []A) ([]string, Printer[A]) {
	outs := make([]string, 0, len(inputs))
	for _, in := range inputs {
		var out string
		out, p = Apply(p, in)
		outs = append(outs, out)
	}
	return outs, p
}

// ApplyAll is ApplyMany discarding the final printer.
func ApplyAll[A any](p Printer[A], inputs []A) []string {
	outs, _ := ApplyMany(p, inputs)
	return outs
}

// ApplyForever drives the printer without end: pull one input, apply, push
// the rendered line, repeat with the successor. It never returns; the only
// ways out are a panic escaping pull or push, or the process ending. No
// failure here is caught or retried. Implemented as a plain loop so the
// stack stays flat.
func ApplyForever[A any](p Printer[A], pull func() A, push func(string)) {
	for {
		var out string
		out, p = Apply(p, pull())
		push(out)
	}
}
