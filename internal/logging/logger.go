package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"starbarcode/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
	Development bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	outputWriter, err := openWriters(defaultSlice(opts.OutputPaths, []string{"stderr"}))
	if err != nil {
		return nil, err
	}

	handler, err := newHandler(opts.Format, outputWriter, levelVar, opts.Development || level <= slog.LevelDebug)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger that writes today's log file in the configured
// format and, when logging.console is set, echoes human-readable lines to
// stderr. Prompts own the terminal, so stderr stays quiet by default. Log files
// older than logging.retention_days are pruned.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}})
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(cfg.Logging.Level))
	addSource := levelVar.Level() <= slog.LevelDebug

	var handlers []slog.Handler
	var logPath string
	if cfg.Paths.LogDir != "" {
		logPath = cfg.LogPath()
		file, err := openWriters([]string{logPath})
		if err != nil {
			return nil, err
		}
		fileHandler, err := newHandler(cfg.Logging.Format, file, levelVar, addSource)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, fileHandler)
	}
	if cfg.Logging.Console {
		handlers = append(handlers, newPrettyHandler(os.Stderr, levelVar, addSource))
	}

	logger := slog.New(newFanoutHandler(handlers...))
	if logPath != "" {
		CleanupOldLogs(logger, cfg.Logging.RetentionDays, RetentionTarget{
			Dir:     cfg.Paths.LogDir,
			Pattern: config.LogFilePattern,
			Exclude: []string{logPath},
		})
	}
	return logger, nil
}

func newHandler(format string, w io.Writer, levelVar *slog.LevelVar, addSource bool) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return newJSONHandler(w, levelVar, addSource), nil
	case "console", "":
		return newPrettyHandler(w, levelVar, addSource), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", format)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		cp := make([]string, len(fallback))
		copy(cp, fallback)
		return cp
	}
	cp := make([]string, len(value))
	copy(cp, value)
	return cp
}

func openWriters(paths []string) (io.Writer, error) {
	seen := map[string]struct{}{}
	var writers []io.Writer

	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if err := ensureLogDir(trimmed); err != nil {
				return nil, err
			}
			file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", trimmed, err)
			}
			writers = append(writers, file)
		}
	}

	if len(writers) == 0 {
		return os.Stderr, nil
	}
	if len(writers) == 1 {
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
