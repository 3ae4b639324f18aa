package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as YAML to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func parseFormat(value string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(value)); format {
	case "", formatTable:
		return formatTable, nil
	case formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want table, json, or yaml)", value)
	}
}
