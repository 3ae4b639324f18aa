package orchestrator

import "fmt"

// State is a position in the request lifecycle.
type State int

const (
	StateStart State = iota
	StateModeSelected
	StateInputsCollected
	StateInvocationBuilt
	StateInvoked
	StatePlaced
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateModeSelected:
		return "mode_selected"
	case StateInputsCollected:
		return "inputs_collected"
	case StateInvocationBuilt:
		return "invocation_built"
	case StateInvoked:
		return "invoked"
	case StatePlaced:
		return "placed"
	case StateEnd:
		return "end"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
