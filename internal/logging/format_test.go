package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestConsoleValueQuoting(t *testing.T) {
	cases := []struct {
		in   slog.Value
		want string
	}{
		{slog.StringValue("/tmp/a.pdf"), "/tmp/a.pdf"},
		{slog.StringValue("EDITION ONE"), `"EDITION ONE"`},
		{slog.StringValue(""), `""`},
		{slog.StringValue("a=b"), `"a=b"`},
		{slog.IntValue(36), "36"},
		{slog.Float64Value(1.2), "1.2"},
		{slog.DurationValue(1500 * time.Millisecond), "1.5s"},
		{slog.AnyValue(errors.New("exit status 2")), `"exit status 2"`},
	}
	for _, tc := range cases {
		if got := consoleValue(tc.in); got != tc.want {
			t.Errorf("consoleValue(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestPlainValueDoesNotQuote(t *testing.T) {
	if got := plainValue(slog.StringValue("hand off")); got != "hand off" {
		t.Fatalf("plainValue = %q", got)
	}
}

func TestJSONHandlerKeys(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, lvl, true))
	logger.WithGroup("generator").Info("generator finished", slog.String("level", "nested"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if payload["level"] != "info" || payload["msg"] != "generator finished" {
		t.Fatalf("unexpected payload %v", payload)
	}
	ts, _ := payload["ts"].(string)
	if _, err := time.Parse(jsonTimeLayout, ts); err != nil {
		t.Fatalf("ts %q does not parse: %v", ts, err)
	}
	src, _ := payload["source"].(string)
	if !strings.HasPrefix(src, "format_test.go:") {
		t.Fatalf("expected short source, got %q", src)
	}
	group, _ := payload["generator"].(map[string]any)
	if group["level"] != "nested" {
		t.Fatalf("grouped attrs must not be rewritten, got %v", payload["generator"])
	}
}
