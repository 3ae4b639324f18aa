package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateGenerator(); err != nil {
		return err
	}
	if err := c.validatePlacement(); err != nil {
		return err
	}
	if err := c.validatePrompt(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateGenerator() error {
	if c.Generator.Binary == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("generator.binary is required. Set STARBARCODE_GENERATOR or edit %s (create with 'starbarcode config init')", defaultPath)
	}
	return nil
}

func (c *Config) validatePlacement() error {
	switch c.Placement.Target {
	case PlacementInDesign, PlacementStdout:
	case PlacementCommand:
		if c.Placement.Command == "" {
			return errors.New("placement.command must be set when placement.target is \"command\"")
		}
	default:
		return fmt.Errorf("placement.target: unsupported value %q (want indesign, command, or stdout)", c.Placement.Target)
	}
	if c.Placement.PageItem == "" {
		return errors.New("placement.page_item must be set")
	}
	return nil
}

func (c *Config) validatePrompt() error {
	switch c.Prompt.Interface {
	case PromptAuto, PromptSurvey, PromptLine:
		return nil
	default:
		return fmt.Errorf("prompt.interface: unsupported value %q (want auto, survey, or line)", c.Prompt.Interface)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Logging.RetentionDays < 0 {
		return fmt.Errorf("logging.retention_days must be >= 0 (got %d)", c.Logging.RetentionDays)
	}
	return nil
}
