package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dzgen/pkg/config"
	"github.com/arthur-debert/dzgen/pkg/ui"
	"github.com/spf13/cobra"
)

func newGenconfigCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				path = config.Path()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				ui.Styled(ui.FormatAuto, ui.SuccessStyle, "Wrote"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination (default: the config path)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
