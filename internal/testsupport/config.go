package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"starbarcode/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Placement defaults to stdout so no layout application is needed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "barcodes")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Placement.Target = config.PlacementStdout
	cfgVal.Prompt.Interface = config.PromptLine

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPlacementTarget overrides placement.target on the test config.
func WithPlacementTarget(target string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Placement.Target = target
	}
}

// WithGeneratorScript writes an executable shell script and points
// generator.binary at it.
func WithGeneratorScript(body string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Generator.Binary = WriteScript(b.t, filepath.Join(b.baseDir, "bin"), "star-barcode", body)
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the default generator and
// osascript are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{b.cfg.Generator.Binary, "osascript"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		for _, name := range names {
			WriteScript(b.t, binDir, name, "exit 0\n")
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
