package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RetentionTarget specifies a directory and filename pattern to prune.
type RetentionTarget struct {
	Dir     string
	Pattern string
	Exclude []string
}

// CleanupOldLogs removes files matching the provided targets that are older
// than retentionDays. A retentionDays value of 0 disables pruning.
func CleanupOldLogs(logger *slog.Logger, retentionDays int, targets ...RetentionTarget) {
	if retentionDays <= 0 {
		return
	}
	if logger == nil {
		logger = NewNop()
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, target := range targets {
		dir := strings.TrimSpace(target.Dir)
		if dir == "" {
			continue
		}
		exclusions := make(map[string]struct{}, len(target.Exclude))
		for _, path := range target.Exclude {
			if abs, err := filepath.Abs(strings.TrimSpace(path)); err == nil {
				exclusions[abs] = struct{}{}
			}
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if pat := strings.TrimSpace(target.Pattern); pat != "" {
				if matched, err := filepath.Match(pat, entry.Name()); err != nil || !matched {
					continue
				}
			}
			fullPath := filepath.Join(dir, entry.Name())
			if abs, err := filepath.Abs(fullPath); err == nil {
				fullPath = abs
			}
			if _, skip := exclusions[fullPath]; skip {
				continue
			}
			info, err := entry.Info()
			if err != nil || !info.ModTime().Before(cutoff) {
				continue
			}
			if err := os.Remove(fullPath); err != nil {
				logger.Warn("log retention remove failed; file remains",
					String("path", fullPath),
					Error(err),
					String(FieldEventType, "log_retention_failed"),
					String(FieldErrorHint, "check file permissions and log_dir ownership"),
				)
				continue
			}
			logger.Debug("log pruned", String("path", fullPath), String(FieldEventType, "log_pruned"))
		}
	}
}
