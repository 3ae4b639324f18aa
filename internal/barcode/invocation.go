package barcode

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date format the generator accepts positionally.
const DateLayout = "2006-01-02"

// Settings holds the fixed, configuration-sourced parts of every invocation.
type Settings struct {
	GeneratorPath string
	OutputDir     string
}

// Invocation is one generator command line.
type Invocation struct {
	Binary string
	Args   []string
}

// Argv returns the full command line with the binary first.
func (i Invocation) Argv() []string {
	argv := make([]string, 0, len(i.Args)+1)
	argv = append(argv, i.Binary)
	return append(argv, i.Args...)
}

// String renders the command line for logs. It is not shell-escaped.
func (i Invocation) String() string {
	return strings.Join(i.Argv(), " ")
}

// TomorrowDate returns the local calendar date one day after now.
func TomorrowDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(DateLayout)
}

// BuildInvocation maps req onto the generator's argument contract. The result
// depends only on its inputs; now is consulted only for Tomorrow requests.
func BuildInvocation(req Request, settings Settings, now time.Time) (Invocation, error) {
	if settings.GeneratorPath == "" {
		return Invocation{}, errors.New("build invocation: generator path not configured")
	}
	if settings.OutputDir == "" {
		return Invocation{}, errors.New("build invocation: output directory not configured")
	}

	var args []string
	switch r := req.(type) {
	case Tomorrow:
		args = []string{TomorrowDate(now)}
	case ExplicitDate:
		args = []string{r.Date}
	case SpecialSequence:
		args = []string{"direct", "--seq", r.Sequence, "--week", r.Week, "--header", r.Header}
	case nil:
		return Invocation{}, errors.New("build invocation: nil request")
	default:
		return Invocation{}, fmt.Errorf("build invocation: unsupported request %T", req)
	}
	args = append(args, "--directory="+settings.OutputDir)

	return Invocation{Binary: settings.GeneratorPath, Args: args}, nil
}
