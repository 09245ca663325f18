package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapudf/internal/config"
)

// ConfigField represents a configuration key.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// EnvVar returns the environment variable that sets the field.
func (f ConfigField) EnvVar() string {
	return config.EnvPrefix + strings.ToUpper(f.Name)
}

// getConfigSchema returns the configuration keys.
// Based on internal/config/types.go and defaults.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "scripts_dir", Type: "string", Default: config.DefaultScriptsDir, Description: "Directory holding function scripts (.star)"},
		{Name: "manifest", Type: "string", Default: config.DefaultManifest, Description: "Function manifest to validate"},
		{Name: "database", Type: "string", Default: config.DefaultDatabase, Description: "Database for manifest entries that do not name one"},
		{Name: "log_level", Type: "string", Default: config.DefaultLogLevel, Description: "Log level: debug, info, warn, error"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Shorthand for debug logging"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown, json, yaml"},
		{Name: "concurrency", Type: "int", Default: fmt.Sprint(config.DefaultConcurrency), Description: "Maximum concurrent registrations"},
		{Name: "register_timeout", Type: "duration", Default: "0s", Description: "Per-function registration timeout; 0s disables it"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leapudf configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("leapudf reads %s (or %s) from the working directory, or the file given with `--config`. Relative paths resolve against the directory of the config file.",
		InlineCode(config.ConfigFileName), InlineCode(config.ConfigFileNameAlt)))

	w.Header(2, "Keys")
	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(f.Default), InlineCode(f.EnvVar()), f.Description})
	}
	w.Table([]string{"Key", "Type", "Default", "Environment", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `# leapudf.yaml
scripts_dir: udfs
manifest: functions.yaml
database: analytics
concurrency: 8
register_timeout: 10s`)

	w.Header(2, "Function Manifest")
	w.Paragraph("The manifest lists the functions to validate. `kind` defaults to `generic`; entries without a `database` inherit the manifest's, then the configured one.")
	w.CodeBlock("yaml", `database: analytics
functions:
  - name: generic_imports
    class: generic_imports
    returns: string
    args: [string]
    owner: data-platform
    resources:
      - type: file
        uri: udfs/generic_imports.star
  - name: abs
    class: builtin.Abs
    kind: simple
    returns: double
    args: [double]`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
