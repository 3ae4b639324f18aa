package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled signals the operator dismissed a prompt.
var ErrCancelled = errors.New("prompt: cancelled")

// Provider presents choices and free-text entry to an operator.
type Provider interface {
	// ChooseOne returns the index of the selected option.
	ChooseOne(ctx context.Context, message string, options []string, defaultIndex int) (int, error)
	// TextInput returns the raw text entered. help is shown alongside the
	// prompt where the implementation supports it.
	TextInput(ctx context.Context, message, help, defaultValue string) (string, error)
}

// Interface names accepted by New.
const (
	KindAuto   = "auto"
	KindSurvey = "survey"
	KindLine   = "line"
)

// New returns the provider for kind. KindAuto picks the survey UI when both
// in and out are terminals and the line reader otherwise.
func New(kind string, in *os.File, out *os.File) (Provider, error) {
	switch kind {
	case KindSurvey:
		return NewSurvey(in, out, os.Stderr), nil
	case KindLine:
		return NewLine(in, out), nil
	case KindAuto, "":
		if isTerminal(in) && isTerminal(out) {
			return NewSurvey(in, out, os.Stderr), nil
		}
		return NewLine(in, out), nil
	default:
		return nil, fmt.Errorf("prompt: unsupported interface %q", kind)
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func validIndex(options []string, idx int) int {
	if idx < 0 || idx >= len(options) {
		return 0
	}
	return idx
}
