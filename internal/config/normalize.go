package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGenerator()
	c.normalizePlacement()
	c.normalizePrompt()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("STARBARCODE_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = strings.TrimSpace(value)
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeGenerator() {
	if value, ok := os.LookupEnv("STARBARCODE_GENERATOR"); ok && strings.TrimSpace(value) != "" {
		c.Generator.Binary = value
	}
	c.Generator.Binary = strings.TrimSpace(c.Generator.Binary)
}

func (c *Config) normalizePlacement() {
	c.Placement.Target = strings.ToLower(strings.TrimSpace(c.Placement.Target))
	if c.Placement.Target == "" {
		c.Placement.Target = defaultPlacementTarget
	}
	c.Placement.PageItem = strings.TrimSpace(c.Placement.PageItem)
	c.Placement.Application = strings.TrimSpace(c.Placement.Application)
	if c.Placement.Application == "" {
		c.Placement.Application = defaultInDesignApplication
	}
	c.Placement.OSAScript = strings.TrimSpace(c.Placement.OSAScript)
	if c.Placement.OSAScript == "" {
		c.Placement.OSAScript = defaultOSAScript
	}
	c.Placement.Command = strings.TrimSpace(c.Placement.Command)
}

func (c *Config) normalizePrompt() {
	c.Prompt.Interface = strings.ToLower(strings.TrimSpace(c.Prompt.Interface))
	if c.Prompt.Interface == "" {
		c.Prompt.Interface = defaultPromptInterface
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
