// Package catalog registers foreign functions declared in manifests.
//
// It plays the metadata store the adapters are written against: it turns a
// Definition into a validated adapter.Function and keeps it in memory, keyed
// by database, name and parameter types. Nothing is persisted.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/leapudf/pkg/adapter"
	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

// Options configures a Catalog.
type Options struct {
	// Timeout bounds each Load call. Zero means no timeout.
	Timeout time.Duration
	// Concurrency bounds RegisterAll. Values below 1 mean 1.
	Concurrency int
}

// Entry is a registered function.
type Entry struct {
	ID           uuid.UUID
	Definition   Definition
	Function     adapter.Function
	RegisteredAt time.Time
}

// Signature returns the signature the function was validated against.
func (e *Entry) Signature() core.Signature {
	return e.Function.Signature()
}

// Catalog is an in-memory function catalog. It is safe for concurrent use.
type Catalog struct {
	loader udf.ClassLoader
	opts   Options
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string][]*Entry // key: database.name, lower-cased
}

// New creates a catalog resolving classes through loader.
// A nil loader uses udf.Default(); a nil logger discards output.
func New(loader udf.ClassLoader, opts Options, logger *slog.Logger) *Catalog {
	if loader == nil {
		loader = udf.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Catalog{
		loader:  loader,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
		entries: make(map[string][]*Entry),
	}
}

func key(database, name string) string {
	return strings.ToLower(database) + "." + strings.ToLower(name)
}

// Register validates def through the adapter for its kind and stores it.
// Failures from the adapter are returned wrapped; errors.Is still matches
// the adapter error kinds.
func (c *Catalog) Register(ctx context.Context, def Definition) (*Entry, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	sig, err := def.Signature()
	if err != nil {
		return nil, err
	}
	if _, ok := c.lookup(def.Database, def.Name, sig.Params); ok {
		return nil, fmt.Errorf("%s%s: %w", def.QualifiedName(), sig.ParamList(), ErrDuplicateFunction)
	}

	a, err := adapter.New(def.FunctionKind(), c.loader, c.logger)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", def.QualifiedName(), err)
	}

	created := c.now()
	ref := def.Reference(created)
	logger := c.logger.With("function", def.QualifiedName(), "class", def.Class)
	logger.Debug("registering function", "signature", sig.String(), "kind", a.Kind())

	fn, err := withTimeout(ctx, c.opts.Timeout, logger, func() (adapter.Function, error) {
		return a.Load(def.Class, sig.Return, sig.Params, adapter.WithReference(ref))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create function %s: %w", def.QualifiedName(), err)
	}

	entry := &Entry{
		ID:           uuid.New(),
		Definition:   def,
		Function:     fn,
		RegisteredAt: created,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	k := key(def.Database, def.Name)
	for _, existing := range c.entries[k] {
		if core.SameParams(existing.Signature().Params, sig.Params) {
			err := fmt.Errorf("%s%s: %w", def.QualifiedName(), sig.ParamList(), ErrDuplicateFunction)
			return nil, errors.Join(err, closeFunction(def, fn, logger))
		}
	}
	c.entries[k] = append(c.entries[k], entry)

	logger.Info("registered function", "id", entry.ID.String(), "signature", sig.String())
	return entry, nil
}

// Lookup returns the function registered under database.name with exactly params.
func (c *Catalog) Lookup(database, name string, params []core.Type) (*Entry, error) {
	if e, ok := c.lookup(database, name, params); ok {
		return e, nil
	}
	return nil, fmt.Errorf("%s.%s%s: %w", database, name, core.FormatParams(params), ErrFunctionNotFound)
}

func (c *Catalog) lookup(database, name string, params []core.Type) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entries[key(database, name)] {
		if core.SameParams(e.Signature().Params, params) {
			return e, true
		}
	}
	return nil, false
}

// Overloads returns every function registered under database.name.
func (c *Catalog) Overloads(database, name string) []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := c.entries[key(database, name)]
	out := make([]*Entry, len(entries))
	copy(out, entries)
	return out
}

// Functions returns all entries sorted by qualified name, then parameter list.
func (c *Catalog) Functions() []*Entry {
	c.mu.RLock()
	var all []*Entry
	for _, entries := range c.entries {
		all = append(all, entries...)
	}
	c.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		ki := key(all[i].Definition.Database, all[i].Definition.Name)
		kj := key(all[j].Definition.Database, all[j].Definition.Name)
		if ki != kj {
			return ki < kj
		}
		return all[i].Signature().ParamList() < all[j].Signature().ParamList()
	})
	return all
}

// Len returns the number of registered functions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, entries := range c.entries {
		n += len(entries)
	}
	return n
}

// Drop removes a function and releases its instance when it implements udf.Closer.
func (c *Catalog) Drop(database, name string, params []core.Type) error {
	c.mu.Lock()
	k := key(database, name)
	entries := c.entries[k]
	var dropped *Entry
	for i, e := range entries {
		if core.SameParams(e.Signature().Params, params) {
			dropped = e
			entries = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if dropped == nil {
		c.mu.Unlock()
		return fmt.Errorf("%s.%s%s: %w", database, name, core.FormatParams(params), ErrFunctionNotFound)
	}
	if len(entries) == 0 {
		delete(c.entries, k)
	} else {
		c.entries[k] = entries
	}
	c.mu.Unlock()

	logger := c.logger.With("function", dropped.Definition.QualifiedName(), "class", dropped.Definition.Class)
	logger.Info("dropped function", "id", dropped.ID.String())
	return closeFunction(dropped.Definition, dropped.Function, logger)
}

func closeFunction(def Definition, fn adapter.Function, logger *slog.Logger) error {
	closer, ok := fn.Handle().(udf.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		logger.Warn("failed to release function", "error", err)
		return fmt.Errorf("release %s: %w", def.QualifiedName(), err)
	}
	return nil
}
