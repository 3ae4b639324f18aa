package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Generator describes the external barcode generator executable.
type Generator struct {
	Binary string `toml:"binary"`
	// FailOnStderr treats any diagnostic output as a failed run even when the
	// generator exits zero.
	FailOnStderr bool `toml:"fail_on_stderr"`
}

// Placement selects where a generated artifact is handed off.
type Placement struct {
	Target      string   `toml:"target"`
	PageItem    string   `toml:"page_item"`
	Application string   `toml:"application"`
	OSAScript   string   `toml:"osascript"`
	Command     string   `toml:"command"`
	Args        []string `toml:"args"`
}

// Prompt selects the operator prompt implementation.
type Prompt struct {
	Interface string `toml:"interface"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format  string `toml:"format"`
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
	// RetentionDays prunes daily log files older than this; 0 keeps them all.
	RetentionDays int `toml:"retention_days"`
}

// Config encapsulates all configuration values for starbarcode.
//
// Configuration sections by subsystem:
//   - Paths: barcode output directory and log directory
//   - Generator: external barcode generator executable
//   - Placement: page-layout hand-off target
//   - Prompt: operator prompt implementation
//   - Logging: log format, level, and console echo
type Config struct {
	Paths     Paths     `toml:"paths"`
	Generator Generator `toml:"generator"`
	Placement Placement `toml:"placement"`
	Prompt    Prompt    `toml:"prompt"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("starbarcode.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a request writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LockPath returns the advisory lock file guarding a single in-flight request.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.LogDir, "starbarcode.lock")
}

// LogFilePattern matches the daily log files written under log_dir.
const LogFilePattern = "starbarcode-*.log"

// LogPath returns today's log file.
func (c *Config) LogPath() string {
	return c.LogPathFor(time.Now())
}

// LogPathFor returns the log file for the local day containing t.
func (c *Config) LogPathFor(t time.Time) string {
	return filepath.Join(c.Paths.LogDir, "starbarcode-"+t.Format("2006-01-02")+".log")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
