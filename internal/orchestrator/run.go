package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"starbarcode/internal/barcode"
	"starbarcode/internal/logging"
	"starbarcode/internal/services"
	"starbarcode/internal/services/generator"
)

// Outcome records how far a request got and what it produced.
type Outcome struct {
	RequestID  string
	Mode       barcode.Mode
	Request    barcode.Request
	Invocation barcode.Invocation
	Result     generator.Result
	// State is the last state reached. Only a completed request reaches End;
	// a failed or cancelled one keeps the state it stopped in.
	State    State
	Duration time.Duration
}

// ArtifactPath returns the generated file, empty if the generator never
// succeeded.
func (o Outcome) ArtifactPath() string {
	return o.Result.ArtifactPath
}

// Run executes one request. The returned error, if any, matches one of
// ErrUserCancelled, ErrGeneratorFailure or ErrPlacementFailure, or reports a
// wiring problem such as missing settings.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	out := Outcome{RequestID: o.newRequestID(), State: StateStart}
	start := o.now()
	ctx = services.WithRequestID(ctx, out.RequestID)
	logger := logging.WithContext(ctx, o.logger)
	logger.Debug("request started")

	err := o.run(ctx, logger, &out)
	out.Duration = o.now().Sub(start)
	o.logOutcome(logger, out, err)
	return out, err
}

func (o *Orchestrator) run(ctx context.Context, logger *slog.Logger, out *Outcome) error {
	mode, err := o.SelectMode(services.WithStage(ctx, "select_mode"))
	if err != nil {
		return err
	}
	out.Mode = mode
	ctx = services.WithMode(ctx, mode.String())
	logger = logger.With(logging.String(logging.FieldMode, mode.String()))
	o.advance(logger, out, StateModeSelected)

	req, err := o.CollectInputs(services.WithStage(ctx, "collect_inputs"), mode)
	if err != nil {
		return err
	}
	out.Request = req
	o.advance(logger, out, StateInputsCollected)

	inv, err := o.BuildInvocation(req)
	if err != nil {
		return err
	}
	out.Invocation = inv
	o.advance(logger, out, StateInvocationBuilt, logging.String("command", inv.String()))

	result, err := o.Invoke(services.WithStage(ctx, "invoke"), inv)
	if err != nil {
		return err
	}
	out.Result = result
	o.advance(logger, out, StateInvoked, logging.String("artifact_path", result.ArtifactPath))

	if err := o.HandOff(services.WithStage(ctx, "hand_off"), result); err != nil {
		return err
	}
	o.advance(logger, out, StatePlaced, logging.String("page_item", o.pageItem))
	o.advance(logger, out, StateEnd)
	return nil
}

func (o *Orchestrator) advance(logger *slog.Logger, out *Outcome, next State, attrs ...logging.Attr) {
	attrs = append([]logging.Attr{
		logging.String("from", out.State.String()),
		logging.String("to", next.String()),
	}, attrs...)
	logger.Debug("request state changed", logging.Args(attrs...)...)
	out.State = next
}

func (o *Orchestrator) logOutcome(logger *slog.Logger, out Outcome, err error) {
	attrs := []logging.Attr{
		logging.String("last_state", out.State.String()),
		logging.Duration("duration", out.Duration),
	}
	if path := out.ArtifactPath(); path != "" {
		attrs = append(attrs, logging.String("artifact_path", path))
	}
	switch {
	case err == nil:
		if out.Result.Name != nil {
			attrs = append(attrs, logging.String("edition", out.Result.Name.Label()))
		}
		logger.Info("barcode placed", logging.Args(attrs...)...)
	case errors.Is(err, ErrUserCancelled):
		logger.Info("request cancelled", logging.Args(attrs...)...)
	case errors.Is(err, ErrGeneratorFailure):
		logging.ErrorWithContext(logger, "barcode generation failed", "generator_failure",
			append(attrs, logging.Error(err), logging.String(logging.FieldErrorHint, "check the generator output and the values entered"))...)
	case errors.Is(err, ErrPlacementFailure):
		logging.ErrorWithContext(logger, "barcode placement failed", "placement_failure",
			append(attrs, logging.Error(err), logging.String(logging.FieldErrorHint, "open the target document and check the page item name"))...)
	default:
		logging.ErrorWithContext(logger, "request failed", "request_failure", append(attrs, logging.Error(err))...)
	}
}
