package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"starbarcode/internal/prompt"
)

var modes = []string{"Tomorrow", "Another date", "Special sequence"}

func TestLineChooseOneDefaultsOnBlank(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewLine(strings.NewReader("\n"), &out)

	idx, err := p.ChooseOne(context.Background(), "Which barcode?", modes, 0)
	if err != nil {
		t.Fatalf("ChooseOne returned error: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected default index 0, got %d", idx)
	}
	if !strings.Contains(out.String(), "* 1) Tomorrow") {
		t.Fatalf("expected default marker in menu, got %q", out.String())
	}
}

func TestLineChooseOneByNumberAndLabel(t *testing.T) {
	p := prompt.NewLine(strings.NewReader("3\nanother DATE\n"), &bytes.Buffer{})

	idx, err := p.ChooseOne(context.Background(), "Which barcode?", modes, 0)
	if err != nil || idx != 2 {
		t.Fatalf("expected index 2, got %d err=%v", idx, err)
	}
	idx, err = p.ChooseOne(context.Background(), "Which barcode?", modes, 0)
	if err != nil || idx != 1 {
		t.Fatalf("expected index 1, got %d err=%v", idx, err)
	}
}

func TestLineChooseOneRepromptsOnUnknownChoice(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewLine(strings.NewReader("9\nweekly\n2\n"), &out)

	idx, err := p.ChooseOne(context.Background(), "Which barcode?", modes, 0)
	if err != nil {
		t.Fatalf("ChooseOne returned error: %v", err)
	}
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if strings.Count(out.String(), "Which barcode?") != 3 {
		t.Fatalf("expected three menu renderings, got %q", out.String())
	}
}

func TestLineEOFCancels(t *testing.T) {
	p := prompt.NewLine(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.ChooseOne(context.Background(), "Which barcode?", modes, 0); !errors.Is(err, prompt.ErrCancelled) {
		t.Fatalf("expected ErrCancelled from chooser, got %v", err)
	}

	p = prompt.NewLine(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.TextInput(context.Background(), "Date", "YYYY-MM-DD", ""); !errors.Is(err, prompt.ErrCancelled) {
		t.Fatalf("expected ErrCancelled from text input, got %v", err)
	}
}

func TestLineTextInputKeepsRawText(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewLine(strings.NewReader("  2024-3-1 \r\nEDITION ONE"), &out)

	got, err := p.TextInput(context.Background(), "Date", "YYYY-MM-DD", "")
	if err != nil {
		t.Fatalf("TextInput returned error: %v", err)
	}
	if got != "  2024-3-1 " {
		t.Fatalf("expected raw text preserved, got %q", got)
	}
	got, err = p.TextInput(context.Background(), "Header", "", "")
	if err != nil {
		t.Fatalf("TextInput returned error: %v", err)
	}
	if got != "EDITION ONE" {
		t.Fatalf("expected unterminated final line, got %q", got)
	}
	if !strings.Contains(out.String(), "Date (YYYY-MM-DD): ") {
		t.Fatalf("expected help text in prompt, got %q", out.String())
	}
}

func TestLineHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := prompt.NewLine(strings.NewReader("1\n"), &bytes.Buffer{})
	if _, err := p.ChooseOne(ctx, "Which barcode?", modes, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	if _, err := prompt.New("gui", nil, nil); err == nil {
		t.Fatal("expected error for unknown interface")
	}
}

func TestNewAutoFallsBackToLineWithoutTerminal(t *testing.T) {
	p, err := prompt.New(prompt.KindAuto, nil, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, ok := p.(*prompt.Line); !ok {
		t.Fatalf("expected line provider without a terminal, got %T", p)
	}
}
