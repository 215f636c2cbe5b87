package dstring

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Marker is the character dzen reserves for directives. FromText doubles
// every literal occurrence so it renders as itself.
const Marker = '^'

// initPrefix is emitted once at the front of every rendered line.
const initPrefix = "^ib(1)"

// DString is an immutable markup fragment with an optional known width.
// The zero value is the empty fragment (width 0).
type DString struct {
	write   func(st State, sb *strings.Builder)
	width   int
	unknown bool
}

// FromText builds a DString from plain text, doubling every '^' so the
// renderer treats it literally. The width is that of the escaped text.
func FromText(s string) DString {
	return FromRaw(strings.ReplaceAll(s, "^", "^^"))
}

// FromRaw builds a DString from text emitted verbatim, with no escaping.
// The caller is responsible for any '^' the text contains.
func FromRaw(s string) DString {
	return Primitive(s, runewidth.StringWidth(s), true)
}

// Primitive is the lowest-level constructor: a pre-built markup fragment
// with an explicitly supplied width. Pass known=false when the fragment
// contains graphical elements whose width cannot be counted. Claiming a
// wrong width is not detected here; it surfaces as misaligned padding.
func Primitive(s string, width int, known bool) DString {
	if s == "" && known && width == 0 {
		return DString{}
	}
	return DString{
		write:   func(_ State, sb *strings.Builder) { sb.WriteString(s) },
		width:   width,
		unknown: !known,
	}
}

// Command builds the directive ^name(arg). Directives normally occupy no
// visible width; pass graphic=true for ones that draw something (rects,
// icons), which makes the width unknown.
func Command(graphic bool, name, arg string) DString {
	return Primitive("^"+name+"("+arg+")", 0, !graphic)
}

// FromFunc builds a DString whose text depends on the evaluation state.
// Colour regions are built this way: they emit a directive, evaluate their
// body under a modified state, and restore the surrounding colour.
func FromFunc(width int, known bool, eval func(st State) string) DString {
	return DString{
		write:   func(st State, sb *strings.Builder) { sb.WriteString(eval(st)) },
		width:   width,
		unknown: !known,
	}
}

// Empty returns the identity fragment, equal to the zero value.
func Empty() DString {
	return DString{}
}

// Concat joins two fragments. Construction is O(1); evaluation visits both
// sides in order under the same state. Widths add, unknown absorbs.
func Concat(a, b DString) DString {
	if a.write == nil {
		return b
	}
	if b.write == nil {
		return a
	}
	return DString{
		write: func(st State, sb *strings.Builder) {
			a.write(st, sb)
			b.write(st, sb)
		},
		width:   a.width + b.width,
		unknown: a.unknown || b.unknown,
	}
}

// Join concatenates any number of fragments in order.
func Join(parts ...DString) DString {
	out := DString{}
	for _, p := range parts {
		out = Concat(out, p)
	}
	return out
}

// Append returns d followed by more.
func (d DString) Append(more DString) DString {
	return Concat(d, more)
}

// Eval renders the fragment under the given state, without the init prefix.
func (d DString) Eval(st State) string {
	if d.write == nil {
		return ""
	}
	var sb strings.Builder
	d.write(st, &sb)
	return sb.String()
}

// Render evaluates under the default state and prefixes the ^ib(1)
// initialization directive. This is what gets fed to the renderer, one call
// per output line.
func (d DString) Render() string {
	var sb strings.Builder
	sb.WriteString(initPrefix)
	if d.write != nil {
		d.write(DefaultState(), &sb)
	}
	return sb.String()
}

// Measure returns the visible width under the default state. The second
// return is false when the width is unknown (graphical content).
func (d DString) Measure() (int, bool) {
	return d.width, !d.unknown
}
