// Package ui handles dzgen's own terminal output: the CLI's messages,
// tables, and help text. Bar markup never passes through here; dzen
// directives and ANSI styling are different worlds.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how CLI output is rendered.
type Format int

const (
	// FormatAuto picks term or text based on the output terminal.
	FormatAuto Format = iota
	// FormatTerminal renders with colors and styling.
	FormatTerminal
	// FormatText renders plain text.
	FormatText
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format %q (want auto, term or text)", s)
	}
}

// Resolve turns FormatAuto into a concrete format for stdout: terminal
// when stdout is a tty with colour support and NO_COLOR is unset.
func (f Format) Resolve() Format {
	if f != FormatAuto {
		return f
	}
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatText
	}
	if termenv.EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
