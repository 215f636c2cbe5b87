package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dzgen/internal/sysinfo"
	"github.com/arthur-debert/dzgen/pkg/bar"
	"github.com/arthur-debert/dzgen/pkg/config"
	"github.com/arthur-debert/dzgen/pkg/logging"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		toStdout   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo status bar",
		Long: `Assembles the demo bar (clock, load average, memory) from the combinator
library and drives it forever, one rendered line per update interval.
By default the lines are piped into a spawned dzen2; --stdout prints them
instead, which is handy for inspecting the markup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("run")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			pal, err := loadPalette(cfg)
			if err != nil {
				return err
			}

			p := buildDemoPrinter(cfg, pal)
			pull := func() (sysinfo.Sample, error) { return sysinfo.Collect(), nil }

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			push := func(line string) error {
				_, err := fmt.Println(line)
				return err
			}
			if !toStdout {
				b, err := bar.Start(ctx, barOptions(cfg))
				if err != nil {
					return err
				}
				defer func() {
					if err := b.Close(); err != nil {
						logger.Debug().Err(err).Msg("Renderer shutdown")
					}
				}()
				push = b.Push
			}

			err = bar.Run(ctx, push, p, pull, cfg.Demo.ParsedInterval())
			if errors.Is(err, context.Canceled) {
				logger.Info().Msg("Interrupted, shutting down")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.Path(), "Config file")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print rendered lines instead of spawning dzen2")
	return cmd
}

func barOptions(cfg config.Config) bar.Options {
	return bar.Options{
		Path:       cfg.Bar.Command,
		Font:       cfg.Bar.Font,
		Foreground: cfg.Bar.Foreground,
		Background: cfg.Bar.Background,
		Width:      cfg.Bar.Width,
		Height:     cfg.Bar.Height,
		X:          cfg.Bar.X,
		Y:          cfg.Bar.Y,
		TitleAlign: cfg.Bar.TitleAlign,
	}
}
