package printer

import (
	"fmt"

	"github.com/arthur-debert/dzgen/pkg/dstring"
)

// Printer maps one input to a markup fragment plus its own successor.
// The zero value prints nothing and never changes.
type Printer[A any] struct {
	step func(st dstring.State, in A) (dstring.DString, Printer[A])
}

// New builds a printer from a step function. Most callers want one of the
// higher-level constructors below instead.
func New[A any](step func(st dstring.State, in A) (dstring.DString, Printer[A])) Printer[A] {
	return Printer[A]{step: step}
}

// Print applies the printer to one input under the given style state,
// returning the produced fragment and the printer to use for the next
// input.
func (p Printer[A]) Print(st dstring.State, in A) (dstring.DString, Printer[A]) {
	if p.step == nil {
		return dstring.Empty(), p
	}
	return p.step(st, in)
}

// Const builds a stateless printer: every application returns f(input) and
// the printer itself as successor.
func Const[A any](f func(A) dstring.DString) Printer[A] {
	var p Printer[A]
	p = New(func(_ dstring.State, in A) (dstring.DString, Printer[A]) {
		return f(in), p
	})
	return p
}

// Stateful builds a printer carrying internal memory. Each application
// passes the current memory and the input to step, emits the returned
// fragment, and wraps the updated memory into the successor. The memory
// type is opaque to the combinator layer.
func Stateful[M, A any](step func(mem M, in A) (dstring.DString, M), initial M) Printer[A] {
	return New(func(_ dstring.State, in A) (dstring.DString, Printer[A]) {
		out, next := step(initial, in)
		return out, Stateful(step, next)
	})
}

// Lift turns a fixed fragment into a printer that ignores its input. The
// fragment is still evaluated per application, under the state in effect
// at that point.
func Lift[A any](d dstring.DString) Printer[A] {
	return Const(func(A) dstring.DString { return d })
}

// Text prints its input as escaped plain text.
func Text() Printer[string] {
	return Const(dstring.FromText)
}

// Showing prints the canonical textual representation of its input.
func Showing[A any]() Printer[A] {
	return Const(func(in A) dstring.DString {
		return dstring.FromText(fmt.Sprint(in))
	})
}

// Contramap adapts a printer to a different input type by projecting each
// input through f before printing.
func Contramap[B, A any](f func(B) A, p Printer[A]) Printer[B] {
	return New(func(st dstring.State, in B) (dstring.DString, Printer[B]) {
		out, next := p.Print(st, f(in))
		return out, Contramap(f, next)
	})
}
