package orchestrator_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"starbarcode/internal/barcode"
	"starbarcode/internal/orchestrator"
	"starbarcode/internal/prompt"
	"starbarcode/internal/services/generator"
)

// answer is one scripted reply. err wins over the values.
type answer struct {
	choice int
	text   string
	err    error
}

type promptCall struct {
	kind         string
	message      string
	options      []string
	defaultIndex int
	defaultValue string
}

type scriptedPrompt struct {
	t       *testing.T
	answers []answer
	calls   []promptCall
}

func (p *scriptedPrompt) next() answer {
	p.t.Helper()
	if len(p.answers) == 0 {
		p.t.Fatalf("unexpected prompt after %d calls", len(p.calls))
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

func (p *scriptedPrompt) ChooseOne(_ context.Context, message string, options []string, defaultIndex int) (int, error) {
	p.calls = append(p.calls, promptCall{kind: "choose", message: message, options: options, defaultIndex: defaultIndex})
	a := p.next()
	return a.choice, a.err
}

func (p *scriptedPrompt) TextInput(_ context.Context, message, _ string, defaultValue string) (string, error) {
	p.calls = append(p.calls, promptCall{kind: "text", message: message, defaultValue: defaultValue})
	a := p.next()
	return a.text, a.err
}

type fakeGenerator struct {
	calls  []barcode.Invocation
	result generator.Result
	err    error
}

func (g *fakeGenerator) Generate(_ context.Context, inv barcode.Invocation) (generator.Result, error) {
	g.calls = append(g.calls, inv)
	if g.err != nil {
		return generator.Result{}, g.err
	}
	return g.result, nil
}

type placeCall struct {
	path string
	item string
}

type fakeSink struct {
	calls []placeCall
	err   error
}

func (s *fakeSink) Place(_ context.Context, path, item string) error {
	s.calls = append(s.calls, placeCall{path: path, item: item})
	return s.err
}

var fixedNow = time.Date(2024, time.February, 28, 9, 30, 0, 0, time.Local)

var testSettings = barcode.Settings{GeneratorPath: "/usr/local/bin/star-barcode", OutputDir: "/Users/ops/Barcodes"}

type harness struct {
	prompt    *scriptedPrompt
	generator *fakeGenerator
	sink      *fakeSink
	orch      *orchestrator.Orchestrator
}

func newHarness(t *testing.T, answers ...answer) *harness {
	t.Helper()
	h := &harness{
		prompt:    &scriptedPrompt{t: t, answers: answers},
		generator: &fakeGenerator{result: generator.Result{ArtifactPath: "/Users/ops/Barcodes/Barcode_2024-W09-4_24.pdf"}},
		sink:      &fakeSink{},
	}
	orch, err := orchestrator.New(orchestrator.Options{
		Prompt:       h.prompt,
		Generator:    h.generator,
		Sink:         h.sink,
		Settings:     testSettings,
		Now:          func() time.Time { return fixedNow },
		NewRequestID: func() string { return "req-1" },
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	h.orch = orch
	return h
}

var (
	cancelled = answer{err: prompt.ErrCancelled}
	errBroken = errors.New("terminal went away")
)

func text(s string) answer { return answer{text: s} }

func choose(i int) answer { return answer{choice: i} }

func failure(msg string) error {
	return &generator.Failure{ExitCode: 2, Diagnostic: msg, Err: fmt.Errorf("exit status 2")}
}
