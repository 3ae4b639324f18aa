package preflight

import (
	"fmt"
	"strings"

	"starbarcode/internal/config"
	"starbarcode/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the filesystem checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
}

// Verify runs the checks a request needs before prompting and returns
// ErrNotReady naming the failures. The generator binary is not checked here; a
// missing generator surfaces from the run itself as a generator failure.
func Verify(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: no configuration", ErrNotReady)
	}
	var failures []string
	for _, r := range RunAll(cfg) {
		if !r.Passed {
			failures = append(failures, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	for _, s := range deps.CheckBinaries(PlacementRequirements(cfg)) {
		if s.Missing() {
			failures = append(failures, fmt.Sprintf("%s: %s", s.Name, s.Detail))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotReady, strings.Join(failures, "; "))
}
