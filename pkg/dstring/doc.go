// Package dstring implements the annotated string type that all dzen markup
// is built from.
//
// A DString is an immutable piece of markup text. Two things set it apart
// from a plain string:
//
//   - Its rendering may depend on the ambient style State (embedded colour
//     directives restore whatever colour was active around them).
//   - It tracks an optional visible width. Plain text has a known width,
//     graphical directives (rects, icons) do not, and concatenation adds
//     widths while any unknown side makes the result unknown.
//
// Concatenation is O(1) and associative, with the zero value as identity.
// Text built with FromText has every literal '^' doubled so dzen does not
// mistake it for a directive; FromRaw and Primitive bypass the escaping for
// pre-built markup fragments.
package dstring
