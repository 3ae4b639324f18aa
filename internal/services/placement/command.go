package placement

import (
	"context"

	"starbarcode/internal/services"
)

// Command runs an arbitrary executable as the placement step. The artifact
// path and page item name are appended after the configured arguments.
type Command struct {
	binary string
	args   []string
	exec   services.Executor
}

// NewCommand builds a command sink. A nil executor runs real processes.
func NewCommand(binary string, args []string, exec services.Executor) *Command {
	if exec == nil {
		exec = services.CommandExecutor{}
	}
	return &Command{binary: binary, args: append([]string(nil), args...), exec: exec}
}

func (s *Command) Place(ctx context.Context, artifactPath, pageItem string) error {
	args := make([]string, 0, len(s.args)+2)
	args = append(args, s.args...)
	args = append(args, artifactPath, pageItem)
	return runTool(ctx, s.exec, s.binary, args)
}
