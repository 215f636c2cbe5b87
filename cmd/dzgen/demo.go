package main

import (
	"fmt"

	"github.com/arthur-debert/dzgen/internal/sysinfo"
	"github.com/arthur-debert/dzgen/pkg/colour"
	"github.com/arthur-debert/dzgen/pkg/config"
	"github.com/arthur-debert/dzgen/pkg/dstring"
	"github.com/arthur-debert/dzgen/pkg/gadget"
	"github.com/arthur-debert/dzgen/pkg/pad"
	"github.com/arthur-debert/dzgen/pkg/printer"
)

// buildDemoPrinter assembles the demo bar from the combinator library:
// a clock, then optional load and memory sections, all reading the same
// Sample and separated by a muted divider.
func buildDemoPrinter(cfg config.Config, pal colour.Palette) printer.Printer[sysinfo.Sample] {
	accent := pal.Get("accent", colour.Cyan)
	muted := pal.Get("muted", colour.Grey)
	good := pal.Get("good", colour.Green)
	urgent := pal.Get("urgent", colour.Red)

	sep := colour.FG(muted, dstring.FromText(" | "))
	meterStyle := gadget.DefaultMeterStyle()

	clock := printer.Const(func(s sysinfo.Sample) dstring.DString {
		return colour.FG(accent, dstring.FromText(s.Now.Format(cfg.Demo.ClockFormat)))
	})

	parts := []printer.Printer[sysinfo.Sample]{clock}

	if cfg.Demo.ShowLoad {
		label := dstring.FromText("load ")
		digits := gadget.Smooth(cfg.Demo.SmoothWindow, func(v float64) dstring.DString {
			return pad.Left(5, dstring.FromText(fmt.Sprintf("%.2f", v)))
		})
		meter := gadget.Smooth(cfg.Demo.SmoothWindow, func(v float64) dstring.DString {
			return dstring.Concat(dstring.FromText(" "),
				gadget.ShadedMeter(meterStyle, good, urgent, v/4))
		})
		load := printer.Contramap(func(s sysinfo.Sample) float64 { return s.Load },
			printer.Before(label, printer.Share(digits, meter)))
		parts = append(parts, load)
	}

	if cfg.Demo.ShowMemory {
		label := dstring.FromText("mem ")
		digits := gadget.Smooth(cfg.Demo.SmoothWindow, func(v float64) dstring.DString {
			return pad.Left(4, dstring.FromText(fmt.Sprintf("%.0f%%", 100*v)))
		})
		meter := gadget.Smooth(cfg.Demo.SmoothWindow, func(v float64) dstring.DString {
			return dstring.Concat(dstring.FromText(" "),
				gadget.ShadedMeter(meterStyle, good, urgent, v))
		})
		mem := printer.Contramap(func(s sysinfo.Sample) float64 { return s.Mem },
			printer.Before(label, printer.Share(digits, meter)))
		parts = append(parts, mem)
	}

	out := parts[0]
	for _, part := range parts[1:] {
		out = printer.Share(out, printer.Before(sep, part))
	}
	return out
}

// loadPalette resolves the configured theme file, falling back to the
// built-in palette.
func loadPalette(cfg config.Config) (colour.Palette, error) {
	if cfg.Demo.Theme == "" {
		return colour.DefaultPalette(), nil
	}
	return colour.LoadPalette(cfg.Demo.Theme)
}
