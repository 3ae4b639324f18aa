package barcode

import "fmt"

// Mode identifies one of the mutually exclusive request kinds.
type Mode int

const (
	ModeTomorrow Mode = iota
	ModeAnotherDate
	ModeSpecialSequence
)

// Modes lists every mode in menu order. The first entry is the default choice.
func Modes() []Mode {
	return []Mode{ModeTomorrow, ModeAnotherDate, ModeSpecialSequence}
}

// String returns the operator-facing label of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTomorrow:
		return "Tomorrow"
	case ModeAnotherDate:
		return "Another date"
	case ModeSpecialSequence:
		return "Special sequence"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Request is implemented only by Tomorrow, ExplicitDate and SpecialSequence.
type Request interface {
	Mode() Mode
	isRequest()
}

// Tomorrow requests the barcode for the day after the request is built.
type Tomorrow struct{}

// ExplicitDate carries a date exactly as the operator typed it. The expected
// format is YYYY-MM-DD but the generator is the one that checks it.
type ExplicitDate struct {
	Date string
}

// HeaderAdvisoryLength is the longest header the printed barcode has room
// for. It is shown to the operator and never enforced.
const HeaderAdvisoryLength = 24

// SpecialSequence drives the generator directly with operator-chosen values.
type SpecialSequence struct {
	Sequence string
	Week     string
	Header   string
}

func (Tomorrow) Mode() Mode        { return ModeTomorrow }
func (ExplicitDate) Mode() Mode    { return ModeAnotherDate }
func (SpecialSequence) Mode() Mode { return ModeSpecialSequence }

func (Tomorrow) isRequest()        {}
func (ExplicitDate) isRequest()    {}
func (SpecialSequence) isRequest() {}
