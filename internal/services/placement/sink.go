package placement

import (
	"context"
	"fmt"
	"io"
	"strings"

	"starbarcode/internal/config"
	"starbarcode/internal/services"
)

// Sink places an artifact into a named page item of the active document.
type Sink interface {
	Place(ctx context.Context, artifactPath, pageItem string) error
}

// NewFromConfig builds the sink selected by placement.target. out receives the
// path for the stdout target.
func NewFromConfig(cfg *config.Config, out io.Writer, exec services.Executor) (Sink, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "placement", "configure", "config is nil", nil)
	}
	switch cfg.Placement.Target {
	case config.PlacementInDesign:
		return NewInDesign(cfg.Placement.Application, cfg.Placement.OSAScript, exec), nil
	case config.PlacementCommand:
		return NewCommand(cfg.Placement.Command, cfg.Placement.Args, exec), nil
	case config.PlacementStdout:
		return NewWriter(out), nil
	default:
		return nil, services.Wrap(services.ErrConfiguration, "placement", "configure", fmt.Sprintf("unsupported target %q", cfg.Placement.Target), nil)
	}
}

// runTool executes a placement helper and turns a failed run into an error
// carrying the helper's own message.
func runTool(ctx context.Context, exec services.Executor, binary string, args []string) error {
	out, err := exec.Run(ctx, binary, args)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "placement", binary, strings.TrimSpace(out.Stderr), err)
	}
	if out.ExitCode != 0 {
		message := strings.TrimSpace(out.Stderr)
		if message == "" {
			message = strings.TrimSpace(out.Stdout)
		}
		if message == "" {
			message = fmt.Sprintf("exit status %d", out.ExitCode)
		}
		return services.Wrap(services.ErrExternalTool, "placement", binary, message, nil)
	}
	return nil
}
