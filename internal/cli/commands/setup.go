// Package commands implements the leapudf subcommands.
package commands

import (
	"log/slog"

	"github.com/leapstack-labs/leapudf/internal/cli/output"
	"github.com/leapstack-labs/leapudf/internal/config"
	"github.com/leapstack-labs/leapudf/internal/script"
	"github.com/leapstack-labs/leapudf/pkg/udf"
	"github.com/spf13/cobra"
)

// CommandContext holds the common dependencies for command execution.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the context from the config and logger the root
// command stored on cmd's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// ClassSet is the class registry a command resolves against: the built-in
// classes plus every script in the configured scripts directory.
type ClassSet struct {
	Registry *udf.Registry
	scripts  map[string]bool
}

// Source reports where a class comes from: "script" or "builtin".
func (s *ClassSet) Source(name string) string {
	if s.scripts[name] {
		return "script"
	}
	return "builtin"
}

// LoadClasses builds the ClassSet for the current configuration.
func (c *CommandContext) LoadClasses() (*ClassSet, error) {
	registry := udf.NewRegistryFrom(udf.Default())

	names, err := script.NewLoader(c.Cfg.ScriptsDir, c.Logger).Register(registry)
	if err != nil {
		return nil, err
	}

	set := &ClassSet{Registry: registry, scripts: make(map[string]bool, len(names))}
	for _, name := range names {
		set.scripts[name] = true
	}
	c.Logger.Debug("loaded classes", "scripts", len(names), "total", registry.Len())
	return set, nil
}
