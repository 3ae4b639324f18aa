package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"

	"starbarcode/internal/orchestrator"
	"starbarcode/internal/preflight"
	"starbarcode/internal/services"
)

const artifact = "/srv/barcodes/Barcode_2016-W45-6_36.pdf"

func TestRequestTomorrowByDefault(t *testing.T) {
	argsPath := filepath.Join(t.TempDir(), "args.txt")
	env := setupCLITestEnv(t, recordingGenerator(argsPath, artifact))

	before := time.Now()
	stdout, stderr, err := runCLI(t, nil, env.configPath, "\n")
	if err != nil {
		t.Fatalf("request: %v (stderr %s)", err, stderr)
	}
	if strings.TrimSpace(stdout) != artifact {
		t.Fatalf("stdout placement should print the artifact path, got %q", stdout)
	}
	requireContains(t, stderr, "Tomorrow")
	requireContains(t, stderr, "W45 seq 36")

	got := readArgs(t, argsPath)
	if len(got) != 2 {
		t.Fatalf("expected date and directory args, got %q", got)
	}
	tomorrow := before.AddDate(0, 0, 1).Format("2006-01-02")
	after := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if got[0] != tomorrow && got[0] != after {
		t.Fatalf("date arg = %q want %q", got[0], tomorrow)
	}
	if got[1] != "--directory="+env.cfg.Paths.OutputDir {
		t.Fatalf("directory arg = %q", got[1])
	}
}

func TestRequestSpecialSequenceArgv(t *testing.T) {
	argsPath := filepath.Join(t.TempDir(), "args.txt")
	env := setupCLITestEnv(t, recordingGenerator(argsPath, artifact))

	_, stderr, err := runCLI(t, []string{"request"}, env.configPath, "3\n042\n17\nEDITION ONE\n")
	if err != nil {
		t.Fatalf("request: %v (stderr %s)", err, stderr)
	}
	requireContains(t, stderr, "24 characters")
	want := []string{"direct", "--seq", "042", "--week", "17", "--header", "EDITION ONE", "--directory=" + env.cfg.Paths.OutputDir}
	if diff := cmp.Diff(want, readArgs(t, argsPath)); diff != "" {
		t.Fatalf("argv (-want +got):\n%s", diff)
	}
}

func TestRequestCancelledExitsCleanly(t *testing.T) {
	argsPath := filepath.Join(t.TempDir(), "args.txt")
	env := setupCLITestEnv(t, recordingGenerator(argsPath, artifact))

	stdout, stderr, err := runCLI(t, nil, env.configPath, "2\n")
	if err != nil {
		t.Fatalf("cancel should not be an error: %v", err)
	}
	requireContains(t, stderr, "Cancelled.")
	if stdout != "" {
		t.Fatalf("nothing should be placed, got %q", stdout)
	}
	if _, err := os.Stat(argsPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("generator must not run after cancel (stat err %v)", err)
	}
}

func TestRequestGeneratorFailure(t *testing.T) {
	env := setupCLITestEnv(t, "echo 'invalid date: 2024-13-45' >&2\nexit 2\n")

	stdout, _, err := runCLI(t, nil, env.configPath, "2\n2024-13-45\n")
	if !errors.Is(err, orchestrator.ErrGeneratorFailure) {
		t.Fatalf("expected generator failure, got %v", err)
	}
	requireContains(t, err.Error(), "invalid date: 2024-13-45")
	if stdout != "" {
		t.Fatalf("nothing should be placed, got %q", stdout)
	}
}

func TestRequestRefusesConcurrentSession(t *testing.T) {
	argsPath := filepath.Join(t.TempDir(), "args.txt")
	env := setupCLITestEnv(t, recordingGenerator(argsPath, artifact))
	if err := env.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	held := flock.New(env.cfg.LockPath())
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("acquire lock: locked=%v err=%v", locked, err)
	}
	defer held.Unlock()

	_, _, err = runCLI(t, nil, env.configPath, "\n")
	if err == nil || !strings.Contains(err.Error(), "in progress") {
		t.Fatalf("expected lock contention error, got %v", err)
	}
}

func TestRequestMissingGeneratorIsGeneratorFailure(t *testing.T) {
	env := setupCLITestEnv(t, "exit 0\n")
	env.cfg.Generator.Binary = filepath.Join(t.TempDir(), "missing-generator")
	writeTestConfig(t, env.configPath, env.cfg)

	stdout, _, err := runCLI(t, nil, env.configPath, "\n")
	if !errors.Is(err, orchestrator.ErrGeneratorFailure) {
		t.Fatalf("expected generator failure, got %v", err)
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected missing binary to be reported as not found, got %v", err)
	}
	if errors.Is(err, preflight.ErrNotReady) {
		t.Fatalf("missing generator should not fail preflight: %v", err)
	}
	if stdout != "" {
		t.Fatalf("nothing should be placed, got %q", stdout)
	}
}

func TestRequestFailsPreflightWhenOutputDirUnusable(t *testing.T) {
	env := setupCLITestEnv(t, "exit 0\n")
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	env.cfg.Paths.OutputDir = blocker
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, nil, env.configPath, "\n")
	if err == nil {
		t.Fatal("expected preflight failure")
	}
	if errors.Is(err, orchestrator.ErrGeneratorFailure) {
		t.Fatalf("unusable output directory should fail before the generator runs: %v", err)
	}
}
