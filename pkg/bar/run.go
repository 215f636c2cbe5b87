package bar

import (
	"context"
	"time"

	"github.com/arthur-debert/dzgen/pkg/logging"
	"github.com/arthur-debert/dzgen/pkg/printer"
)

// Run drives a printer against a push sink on a fixed interval: every tick
// it pulls one sample, applies the printer, and pushes the rendered line,
// continuing with the successor. It applies once immediately so the bar is
// never blank while the first interval elapses.
//
// Unlike printer.ApplyForever this driver is process-aware: it stops and
// returns the first pull or push error, or ctx.Err() once the context is
// cancelled. Nothing is retried.
func Run[A any](ctx context.Context, push func(string) error, p printer.Printer[A], pull func() (A, error), interval time.Duration) error {
	logger := logging.GetLogger("bar")
	if interval <= 0 {
		interval = time.Second
	}

	step := func() error {
		in, err := pull()
		if err != nil {
			return err
		}
		var line string
		line, p = printer.Apply(p, in)
		return push(line)
	}

	if err := step(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("Run loop cancelled")
			return ctx.Err()
		case <-ticker.C:
			if err := step(); err != nil {
				logger.Debug().Err(err).Msg("Run loop stopping")
				return err
			}
		}
	}
}
