// Package orchestrator drives one barcode request from mode selection to
// placement.
//
// A request moves through a fixed sequence of states:
//
//	Start → ModeSelected → InputsCollected → InvocationBuilt → Invoked → Placed → End
//
// Any step may end the request early with ErrUserCancelled,
// ErrGeneratorFailure or ErrPlacementFailure. There are no retries and no
// backward edges; an operator who wants another barcode starts a new request.
//
// Prompts, the generator and the placement sink are injected so the flow can
// be exercised without a terminal, the real generator, or a layout
// application.
package orchestrator
