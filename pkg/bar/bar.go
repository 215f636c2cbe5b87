package bar

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/dzgen/pkg/logging"
)

// Bar is a running renderer process. Each Push writes one line of markup
// to its stdin; the renderer redraws on every line.
type Bar struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Start launches the renderer. The process inherits stderr so renderer
// diagnostics stay visible; killing the context kills the process.
func Start(ctx context.Context, opts Options) (*Bar, error) {
	logger := logging.GetLogger("bar")

	argv := opts.Argv()
	logger.Debug().Strs("argv", argv).Msg("Starting renderer")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opening renderer stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", argv[0], err)
	}
	logger.Info().Int("pid", cmd.Process.Pid).Msg("Renderer started")

	return &Bar{cmd: cmd, stdin: stdin}, nil
}

// Push sends one rendered line to the renderer. A failure here usually
// means the renderer died (broken pipe); the caller decides whether to
// restart.
func (b *Bar) Push(line string) error {
	if _, err := io.WriteString(b.stdin, line+"\n"); err != nil {
		return fmt.Errorf("writing to renderer: %w", err)
	}
	return nil
}

// Close closes the renderer's stdin, which makes dzen exit, and waits for
// the process.
func (b *Bar) Close() error {
	if err := b.stdin.Close(); err != nil {
		_ = b.cmd.Wait()
		return err
	}
	return b.cmd.Wait()
}

// Wait blocks until the renderer exits.
func (b *Bar) Wait() error {
	return b.cmd.Wait()
}
