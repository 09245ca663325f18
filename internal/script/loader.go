// Package script loads Starlark function scripts from a directory and
// registers each one as a constructible class.
//
// A file named shout.star becomes class "shout". Files are parsed statically
// when loaded; they are executed each time the class is constructed.
package script

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/leapudf/internal/starlark"
	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

// Loader scans a directory for .star function scripts.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a loader for dir. A nil logger discards output.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{dir: dir, logger: logger}
}

// Script is a statically validated function script.
type Script struct {
	*ParsedScript
	source []byte
}

// Load scans the directory and parses every .star file, sorted by name.
// A missing directory yields no scripts.
func (l *Loader) Load() ([]*Script, error) {
	info, err := os.Stat(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Debug("scripts directory not found", "dir", l.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to access scripts directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scripts path is not a directory: %s", l.dir)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*.star"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scripts directory: %w", err)
	}
	sort.Strings(files)

	scripts := make([]*Script, 0, len(files))
	for _, file := range files {
		s, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

func (l *Loader) loadFile(path string) (*Script, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from a glob within the scripts directory
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}
	}

	name := strings.TrimSuffix(filepath.Base(path), ".star")
	if err := validateName(name); err != nil {
		return nil, &LoadError{File: path, Message: err.Error()}
	}

	parsed, err := ParseFile(path, content)
	if err != nil {
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	if parsed.Function(starlark.FuncInitialize) == nil {
		return nil, &LoadError{File: path, Message: "missing required function initialize(arguments)"}
	}

	l.logger.Debug("loaded function script", "class", name, "path", path)
	return &Script{ParsedScript: parsed, source: content}, nil
}

// Class returns the class for the script. Each construction executes the
// source in a fresh thread.
func (s *Script) Class(logger *slog.Logger) *udf.Class {
	return &udf.Class{
		Name:        s.Name,
		Kind:        core.KindGeneric,
		Description: s.Docstring,
		New: func() (any, error) {
			return starlark.NewScriptUDF(s.Name, s.Path, s.source, logger)
		},
	}
}

// Register loads every script and adds its class to registry. It returns the
// names of the classes added.
func (l *Loader) Register(registry *udf.Registry) ([]string, error) {
	scripts, err := l.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(scripts))
	for _, s := range scripts {
		if err := registry.Register(s.Class(l.logger)); err != nil {
			return nil, &LoadError{File: s.Path, Message: err.Error()}
		}
		names = append(names, s.Name)
	}
	return names, nil
}

// validateName checks that a script name is a valid identifier.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("class name cannot be empty")
	}
	for i, r := range name {
		switch {
		case isLetter(r), r == '_':
		case i > 0 && isDigit(r):
		case i == 0:
			return fmt.Errorf("class name must start with letter or underscore: %s", name)
		default:
			return fmt.Errorf("class name contains invalid character: %s", name)
		}
	}
	if starlark.IsPredeclared(name) {
		return fmt.Errorf("class name %q is reserved", name)
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// LoadError represents an error loading a function script.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("udfs/%s: %s", filepath.Base(e.File), e.Message)
}
