package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"starbarcode/internal/barcode"
	"starbarcode/internal/config"
	"starbarcode/internal/orchestrator"
	"starbarcode/internal/preflight"
	"starbarcode/internal/prompt"
	"starbarcode/internal/services"
	"starbarcode/internal/services/generator"
	"starbarcode/internal/services/placement"
)

func newRequestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "request",
		Short: "Generate one barcode and place it (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, ctx)
		},
	}
}

func runRequest(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	if err := preflight.Verify(cfg); err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire request lock %s: %w", cfg.LockPath(), err)
	}
	if !locked {
		return fmt.Errorf("another starbarcode request is in progress (lock %s)", cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	console := cmd.ErrOrStderr()
	provider, err := newPromptProvider(cmd, cfg.Prompt.Interface, console)
	if err != nil {
		return err
	}
	exec := services.CommandExecutor{}
	sink, err := placement.NewFromConfig(cfg, cmd.OutOrStdout(), exec)
	if err != nil {
		return err
	}
	orch, err := orchestrator.New(orchestrator.Options{
		Prompt: provider,
		Generator: generator.New(
			generator.WithExecutor(exec),
			generator.WithFailOnStderr(cfg.Generator.FailOnStderr),
		),
		Sink: sink,
		Settings: barcode.Settings{
			GeneratorPath: cfg.Generator.Binary,
			OutputDir:     cfg.Paths.OutputDir,
		},
		PageItem: cfg.Placement.PageItem,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	outcome, err := orch.Run(cmd.Context())
	switch {
	case err == nil:
		fmt.Fprintln(console, renderOutcome(outcome, cfg))
		return nil
	case errors.Is(err, orchestrator.ErrUserCancelled):
		fmt.Fprintln(console, "Cancelled.")
		return nil
	case errors.Is(err, orchestrator.ErrPlacementFailure):
		return fmt.Errorf("%w\nbarcode left at %s", err, outcome.ArtifactPath())
	default:
		return err
	}
}

// newPromptProvider binds prompts to the terminal when the command streams are
// real files and falls back to the line reader otherwise.
func newPromptProvider(cmd *cobra.Command, kind string, console io.Writer) (prompt.Provider, error) {
	in, inFile := cmd.InOrStdin().(*os.File)
	out, outFile := console.(*os.File)
	if inFile && outFile {
		return prompt.New(kind, in, out)
	}
	if kind == config.PromptSurvey {
		return nil, errors.New("prompt.interface \"survey\" needs a terminal")
	}
	return prompt.NewLine(cmd.InOrStdin(), console), nil
}

func renderOutcome(outcome orchestrator.Outcome, cfg *config.Config) string {
	rows := [][]string{
		{"Request", outcome.RequestID},
		{"Mode", outcome.Mode.String()},
		{"Command", outcome.Invocation.String()},
		{"Artifact", outcome.ArtifactPath()},
	}
	if name := outcome.Result.Name; name != nil {
		rows = append(rows, []string{"Edition", fmt.Sprintf("%d %s", name.ISOYear, name.Label())})
	}
	rows = append(rows,
		[]string{"Placed into", fmt.Sprintf("%s (%s)", cfg.Placement.PageItem, cfg.Placement.Target)},
		[]string{"Duration", outcome.Duration.Round(time.Millisecond).String()},
	)
	return renderTable([]string{"Field", "Value"}, rows)
}
