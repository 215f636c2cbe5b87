package main

import (
	_ "embed"
	"fmt"

	"github.com/arthur-debert/dzgen/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the dzen markup reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ui.FormatAuto.Resolve() != ui.FormatTerminal {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}
			rendered, err := renderer.Render(guideMarkdown)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
