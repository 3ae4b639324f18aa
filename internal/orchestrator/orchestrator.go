package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"starbarcode/internal/barcode"
	"starbarcode/internal/logging"
	"starbarcode/internal/prompt"
	"starbarcode/internal/services/generator"
	"starbarcode/internal/services/placement"
)

// DefaultPageItem is the layout page item that receives the barcode.
const DefaultPageItem = "Barcode"

// Generator runs one generator invocation.
type Generator interface {
	Generate(ctx context.Context, inv barcode.Invocation) (generator.Result, error)
}

// Options wires the orchestrator's collaborators.
type Options struct {
	Prompt    prompt.Provider
	Generator Generator
	Sink      placement.Sink
	Settings  barcode.Settings
	// PageItem defaults to DefaultPageItem.
	PageItem string
	// Now defaults to time.Now.
	Now func() time.Time
	// NewRequestID defaults to a random UUID.
	NewRequestID func() string
	Logger       *slog.Logger
}

// Orchestrator runs barcode requests. It holds no per-request state, so one
// value can serve any number of sequential requests.
type Orchestrator struct {
	prompt       prompt.Provider
	generator    Generator
	sink         placement.Sink
	settings     barcode.Settings
	pageItem     string
	now          func() time.Time
	newRequestID func() string
	logger       *slog.Logger
}

// New validates opts and returns an orchestrator.
func New(opts Options) (*Orchestrator, error) {
	switch {
	case opts.Prompt == nil:
		return nil, errors.New("orchestrator: prompt provider is required")
	case opts.Generator == nil:
		return nil, errors.New("orchestrator: generator is required")
	case opts.Sink == nil:
		return nil, errors.New("orchestrator: placement sink is required")
	}
	o := &Orchestrator{
		prompt:       opts.Prompt,
		generator:    opts.Generator,
		sink:         opts.Sink,
		settings:     opts.Settings,
		pageItem:     strings.TrimSpace(opts.PageItem),
		now:          opts.Now,
		newRequestID: opts.NewRequestID,
		logger:       logging.NewComponentLogger(opts.Logger, "orchestrator"),
	}
	if o.pageItem == "" {
		o.pageItem = DefaultPageItem
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.newRequestID == nil {
		o.newRequestID = uuid.NewString
	}
	return o, nil
}
