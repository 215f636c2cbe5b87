package printer

import (
	"github.com/arthur-debert/dzgen/pkg/dstring"
)

// Pair is the combined input shape for two printers. Longer chains nest on
// the right: Pair[A, Pair[B, C]].
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MkPair packages two inputs.
func MkPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Combine is the one primitive every combinator here reduces to. The split
// function slices the combined input into the two sub-inputs; both printers
// run under the same state, their outputs are concatenated in order, and
// the successor combines the two successors with the same split.
func Combine[C, A, B any](split func(C) (A, B), p1 Printer[A], p2 Printer[B]) Printer[C] {
	return New(func(st dstring.State, in C) (dstring.DString, Printer[C]) {
		a, b := split(in)
		d1, n1 := p1.Print(st, a)
		d2, n2 := p2.Print(st, b)
		return dstring.Concat(d1, d2), Combine(split, n1, n2)
	})
}

// Join combines two printers into one over the pair of their inputs: the
// first element feeds p1, the second feeds p2, outputs in that order.
func Join[A, B any](p1 Printer[A], p2 Printer[B]) Printer[Pair[A, B]] {
	return Combine(func(in Pair[A, B]) (A, B) {
		return in.Fst, in.Snd
	}, p1, p2)
}

// Share feeds one input to both printers and concatenates their outputs.
func Share[A any](p1, p2 Printer[A]) Printer[A] {
	return Combine(func(in A) (A, A) {
		return in, in
	}, p1, p2)
}

// Before prepends a fragment to every output of p. The fragment is
// evaluated per application under that application's state.
func Before[A any](d dstring.DString, p Printer[A]) Printer[A] {
	return Share(Lift[A](d), p)
}

// After appends a fragment to every output of p.
func After[A any](p Printer[A], d dstring.DString) Printer[A] {
	return Share(p, Lift[A](d))
}

// Swapped combines two printers over a pair whose elements arrive in the
// opposite order: the pair's second element feeds p1 (printed first), the
// first element feeds p2.
func Swapped[A, B any](p1 Printer[B], p2 Printer[A]) Printer[Pair[A, B]] {
	return Combine(func(in Pair[A, B]) (B, A) {
		return in.Snd, in.Fst
	}, p1, p2)
}

// WithFirst combines a single-input printer with a pair printer that also
// wants that first input: p1 sees the pair's first element, p2 sees the
// whole pair.
func WithFirst[A, B any](p1 Printer[A], p2 Printer[Pair[A, B]]) Printer[Pair[A, B]] {
	return Combine(func(in Pair[A, B]) (A, Pair[A, B]) {
		return in.Fst, in
	}, p1, p2)
}

// Promote inserts a printer into the middle of a growing right-nested
// input: given input (b, (a, c)), p1 prints from a and p2 prints from
// (b, c). It is the reshape that lets a new single-input printer take the
// middle position without re-nesting the whole chain.
func Promote[A, B, C any](p1 Printer[A], p2 Printer[Pair[B, C]]) Printer[Pair[B, Pair[A, C]]] {
	return Combine(func(in Pair[B, Pair[A, C]]) (A, Pair[B, C]) {
		return in.Snd.Fst, MkPair(in.Fst, in.Snd.Snd)
	}, p1, p2)
}
