package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newGadgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gadgets",
		Short: "List the available bar gadgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{
				{"Gadget", "Kind", "Description"},
				{"Rect / RectOutline", "drawing", "Filled or hollow rectangles"},
				{"Circle / CircleOutline", "drawing", "Filled or hollow circles"},
				{"Icon", "drawing", "XBM/XPM image from a path"},
				{"Shift / AbsPos", "drawing", "Relative or absolute positioning"},
				{"ClickArea", "wrapper", "Runs a command on mouse click"},
				{"Meter / ShadedMeter", "drawing", "Percentage bar of rect cells"},
				{"Smooth", "printer", "Moving average over recent samples"},
				{"Delta", "printer", "Difference from the previous sample"},
				{"Blink", "printer", "Alternates content with same-width blank"},
			}
			return pterm.DefaultTable.
				WithHasHeader().
				WithData(data).
				WithWriter(cmd.OutOrStdout()).
				Render()
		},
	}
}
