package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"starbarcode/internal/config"
	"starbarcode/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

// setupCLITestEnv writes a config whose generator is a shell script with the
// given body. Placement prints to stdout and prompts read lines from stdin.
func setupCLITestEnv(t *testing.T, generatorBody string) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t, testsupport.WithGeneratorScript(generatorBody))
	path := filepath.Join(testsupport.BaseDir(cfg), "starbarcode.toml")
	writeTestConfig(t, path, cfg)
	return &cliTestEnv{
		cfg:        cfg,
		configPath: path,
	}
}

// recordingGenerator returns a generator script body that appends each
// argument to argsPath and prints artifact.
func recordingGenerator(argsPath, artifact string) string {
	return "for a in \"$@\"; do printf '%s\\n' \"$a\" >> '" + argsPath + "'; done\n" +
		"echo '" + artifact + "'\n"
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
