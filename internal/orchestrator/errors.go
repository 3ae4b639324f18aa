package orchestrator

import "errors"

var (
	// ErrUserCancelled is a normal abort: the operator dismissed a prompt.
	ErrUserCancelled = errors.New("request cancelled by operator")
	// ErrGeneratorFailure wraps every unsuccessful generator run.
	ErrGeneratorFailure = errors.New("barcode generator failed")
	// ErrPlacementFailure wraps every unsuccessful hand-off to the layout sink.
	ErrPlacementFailure = errors.New("barcode placement failed")
)
