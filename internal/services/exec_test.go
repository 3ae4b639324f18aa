package services_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"starbarcode/internal/services"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "tool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestCommandExecutorCapturesStreams(t *testing.T) {
	script := writeScript(t, `echo "out $1"; echo "err" >&2; exit 0`)

	out, err := services.CommandExecutor{}.Run(context.Background(), script, []string{"a b"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.Stdout != "out a b\n" {
		t.Fatalf("unexpected stdout %q", out.Stdout)
	}
	if out.Stderr != "err\n" {
		t.Fatalf("unexpected stderr %q", out.Stderr)
	}
	if out.ExitCode != 0 {
		t.Fatalf("unexpected exit code %d", out.ExitCode)
	}
}

func TestCommandExecutorReportsExitCode(t *testing.T) {
	script := writeScript(t, `echo "bad date" >&2; exit 3`)

	out, err := services.CommandExecutor{}.Run(context.Background(), script, nil)
	if err != nil {
		t.Fatalf("non-zero exit should not be an execution error: %v", err)
	}
	if out.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", out.ExitCode)
	}
	if out.Stderr != "bad date\n" {
		t.Fatalf("unexpected stderr %q", out.Stderr)
	}
}

func TestCommandExecutorMissingBinary(t *testing.T) {
	_, err := services.CommandExecutor{}.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}
