package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"starbarcode/internal/barcode"
	"starbarcode/internal/prompt"
	"starbarcode/internal/services"
	"starbarcode/internal/services/generator"
)

const (
	modeMessage     = "Which barcode do you need?"
	dateMessage     = "Date (YYYY-MM-DD)"
	dateHelp        = "Passed to the generator as typed."
	sequenceMessage = "Sequence number"
	sequenceHelp    = "Two digits: price code then ISO weekday, e.g. 36 for a Saturday."
	weekMessage     = "ISO week number"
)

var (
	headerMessage = fmt.Sprintf("Header text (%d characters max)", barcode.HeaderAdvisoryLength)
	headerHelp    = fmt.Sprintf("Longer headers may not fit on the barcode, e.g. %q.", "MSTAR 2016-11-12 SAT 1.2")
)

// SelectMode asks the operator which kind of request to make. Tomorrow is the
// default choice.
func (o *Orchestrator) SelectMode(ctx context.Context) (barcode.Mode, error) {
	modes := barcode.Modes()
	labels := make([]string, len(modes))
	for i, mode := range modes {
		labels[i] = mode.String()
	}
	idx, err := o.prompt.ChooseOne(ctx, modeMessage, labels, 0)
	if err != nil {
		return 0, promptError(err)
	}
	if idx < 0 || idx >= len(modes) {
		return 0, services.Wrap(services.ErrValidation, "orchestrator", "select mode", fmt.Sprintf("prompt returned out of range choice %d", idx), nil)
	}
	return modes[idx], nil
}

// CollectInputs gathers the values mode needs and returns the request. Text
// is kept exactly as entered. Cancelling any prompt discards everything
// collected in this call.
func (o *Orchestrator) CollectInputs(ctx context.Context, mode barcode.Mode) (barcode.Request, error) {
	switch mode {
	case barcode.ModeTomorrow:
		return barcode.Tomorrow{}, nil
	case barcode.ModeAnotherDate:
		date, err := o.prompt.TextInput(ctx, dateMessage, dateHelp, "")
		if err != nil {
			return nil, promptError(err)
		}
		return barcode.ExplicitDate{Date: date}, nil
	case barcode.ModeSpecialSequence:
		seq, err := o.prompt.TextInput(ctx, sequenceMessage, sequenceHelp, "")
		if err != nil {
			return nil, promptError(err)
		}
		week, err := o.prompt.TextInput(ctx, weekMessage, "", "")
		if err != nil {
			return nil, promptError(err)
		}
		header, err := o.prompt.TextInput(ctx, headerMessage, headerHelp, "")
		if err != nil {
			return nil, promptError(err)
		}
		return barcode.SpecialSequence{Sequence: seq, Week: week, Header: header}, nil
	default:
		return nil, services.Wrap(services.ErrValidation, "orchestrator", "collect inputs", fmt.Sprintf("unsupported mode %s", mode), nil)
	}
}

// BuildInvocation maps req to a generator command line using the configured
// settings.
func (o *Orchestrator) BuildInvocation(req barcode.Request) (barcode.Invocation, error) {
	return barcode.BuildInvocation(req, o.settings, o.now())
}

// Invoke runs the generator once. Any failure is wrapped in
// ErrGeneratorFailure with the generator's diagnostic intact.
func (o *Orchestrator) Invoke(ctx context.Context, inv barcode.Invocation) (generator.Result, error) {
	result, err := o.generator.Generate(ctx, inv)
	if err != nil {
		return generator.Result{}, fmt.Errorf("%w: %w", ErrGeneratorFailure, err)
	}
	return result, nil
}

// HandOff places the generated artifact into the configured page item. On
// failure the artifact stays on disk and the error wraps ErrPlacementFailure.
func (o *Orchestrator) HandOff(ctx context.Context, result generator.Result) error {
	if err := o.sink.Place(ctx, result.ArtifactPath, o.pageItem); err != nil {
		return fmt.Errorf("%w: %w", ErrPlacementFailure, err)
	}
	return nil
}

func promptError(err error) error {
	if errors.Is(err, prompt.ErrCancelled) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrUserCancelled, err)
	}
	return err
}
