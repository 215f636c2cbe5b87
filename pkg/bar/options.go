// Package bar spawns the dzen2 renderer process and feeds it rendered
// lines, one per update.
package bar

import "strconv"

// Options describes how the renderer is launched. Zero fields are left to
// dzen's own defaults and omitted from the command line.
type Options struct {
	// Path to the renderer binary; defaults to "dzen2".
	Path string

	Font       string
	Foreground string
	Background string

	// Geometry. Width/Height/X/Y are in pixels; Lines is the number of
	// extra slave lines below the title bar.
	Width  int
	Height int
	X      int
	Y      int
	Lines  int

	// TitleAlign is one of "l", "c", "r".
	TitleAlign string
}

// Argv builds the full command line, binary first.
func (o Options) Argv() []string {
	path := o.Path
	if path == "" {
		path = "dzen2"
	}
	argv := []string{path}

	addStr := func(flag, v string) {
		if v != "" {
			argv = append(argv, flag, v)
		}
	}
	addInt := func(flag string, v int) {
		if v != 0 {
			argv = append(argv, flag, strconv.Itoa(v))
		}
	}

	addStr("-fn", o.Font)
	addStr("-fg", o.Foreground)
	addStr("-bg", o.Background)
	addInt("-w", o.Width)
	addInt("-h", o.Height)
	addInt("-x", o.X)
	addInt("-y", o.Y)
	addInt("-l", o.Lines)
	addStr("-ta", o.TitleAlign)
	return argv
}
