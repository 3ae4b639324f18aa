package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandOutput captures everything an external tool produced during one run.
type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor abstracts command execution for testability. A non-zero exit status
// is reported through CommandOutput.ExitCode; the returned error is reserved for
// failures to run the binary at all.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (CommandOutput, error)
}

// CommandExecutor runs binaries with os/exec. Arguments are passed as argv, never
// through a shell.
type CommandExecutor struct{}

func (CommandExecutor) Run(ctx context.Context, binary string, args []string) (CommandOutput, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return out, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		if out.ExitCode == -1 {
			// Killed by a signal.
			return out, fmt.Errorf("run %s: %w", binary, err)
		}
		return out, nil
	}
	out.ExitCode = -1
	return out, fmt.Errorf("run %s: %w", binary, err)
}
