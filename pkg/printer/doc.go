// Package printer provides self-updating formatters and the algebra that
// combines them into a single status line.
//
// A Printer[A] maps one input sample to a markup fragment and returns its
// own successor, which carries any evolved internal memory (moving
// averages, previous samples). Printers are plain values: applying one
// never changes it, so they can be shared and branched freely. Sequential
// driving must always continue with the returned successor; re-applying a
// printer that was already advanced is legal but yields stale output.
//
// Printers over different input types are combined with Combine and the
// named shapes built on it (Join, Share, Swapped, Promote, WithFirst).
// Chains of combined printers take their input as a right-nested Pair, e.g.
// Pair[A, Pair[B, C]]; the reshaping combinators exist so a printer can be
// inserted at any position of that nesting without a combinator that
// understands arbitrary depth.
package printer
