package preflight

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"starbarcode/internal/config"
	"starbarcode/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckLock reports whether another session currently holds the request lock.
// The lock is released again before returning.
func CheckLock(path string) Result {
	const name = "Request lock"
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if !locked {
		return Result{Name: name, Detail: fmt.Sprintf("%s (held by another session)", path)}
	}
	if err := lock.Unlock(); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: unlock: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (free)", path)}
}

// Requirements lists the executables the configured request path runs.
func Requirements(cfg *config.Config) []deps.Requirement {
	generator := deps.Requirement{
		Name:        "Barcode generator",
		Command:     cfg.Generator.Binary,
		Description: "Produces the barcode artifact",
	}
	return append([]deps.Requirement{generator}, PlacementRequirements(cfg)...)
}

// PlacementRequirements lists the executables the configured placement target
// runs. It is empty for targets handled in-process.
func PlacementRequirements(cfg *config.Config) []deps.Requirement {
	switch cfg.Placement.Target {
	case config.PlacementInDesign:
		return []deps.Requirement{{
			Name:        "osascript",
			Command:     cfg.Placement.OSAScript,
			Description: fmt.Sprintf("Places the barcode into %s", cfg.Placement.Application),
		}}
	case config.PlacementCommand:
		return []deps.Requirement{{
			Name:        "Placement command",
			Command:     cfg.Placement.Command,
			Description: "Receives the artifact path and page item",
		}}
	}
	return nil
}

// CheckSystemDeps evaluates all executables for the given config.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(Requirements(cfg))
}

// ErrNotReady is returned by Verify when a required check fails.
var ErrNotReady = errors.New("preflight checks failed")
