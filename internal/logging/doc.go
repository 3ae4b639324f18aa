// Package logging assembles structured slog loggers and formatting helpers used
// across starbarcode.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so orchestrator code can tag log
// lines with request correlation IDs, modes, and lifecycle stages. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
