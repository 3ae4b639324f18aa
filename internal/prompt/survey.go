package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey renders prompts with AlecAivazis/survey.
type Survey struct {
	stdio terminal.Stdio
}

// NewSurvey builds a survey provider bound to the given streams.
func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Survey{stdio: terminal.Stdio{In: in, Out: out, Err: errOut}}
}

func (s *Survey) ChooseOne(ctx context.Context, message string, options []string, defaultIndex int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, errors.New("prompt: no options to choose from")
	}
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: options[validIndex(options, defaultIndex)],
	}
	if err := survey.AskOne(prompt, &out, survey.WithStdio(s.stdio.In, s.stdio.Out, s.stdio.Err)); err != nil {
		return 0, translateSurveyErr(err)
	}
	for i, option := range options {
		if option == out {
			return i, nil
		}
	}
	return 0, errors.New("prompt: selection not among options")
}

func (s *Survey) TextInput(ctx context.Context, message, help, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: message,
		Help:    help,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &out, survey.WithStdio(s.stdio.In, s.stdio.Out, s.stdio.Err)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return err
}
