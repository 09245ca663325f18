package adapter

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

// Factory builds an adapter bound to a class loader and logger.
type Factory func(loader udf.ClassLoader, logger *slog.Logger) Adapter

var (
	registryMu sync.RWMutex
	registry   = make(map[core.FunctionKind]Factory)
)

// Register adds an adapter factory to the registry.
// Called by adapter implementations in their init() functions.
func Register(kind core.FunctionKind, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = factory
}

// Get retrieves an adapter factory by kind.
func Get(kind core.FunctionKind) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[kind]
	return f, ok
}

// New creates an adapter for kind. Kind matching is case-insensitive; an
// empty kind selects the generic adapter.
func New(kind core.FunctionKind, loader udf.ClassLoader, logger *slog.Logger) (Adapter, error) {
	if kind == "" {
		kind = core.KindGeneric
	}
	normalized := core.FunctionKind(strings.ToLower(string(kind)))

	factory, ok := Get(normalized)
	if !ok {
		return nil, &UnknownKindError{
			Kind:      string(kind),
			Available: ListKinds(),
		}
	}
	return factory(loader, logger), nil
}

// ListKinds returns all registered adapter kinds (sorted).
func ListKinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	return kinds
}

// IsRegistered checks if an adapter kind is registered.
func IsRegistered(kind core.FunctionKind) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[kind]
	return ok
}

// UnknownKindError is returned when an unknown function kind is requested.
type UnknownKindError struct {
	Kind      string
	Available []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown function kind %q\nAvailable kinds: %v\nHint: Check the kind of the function in your manifest", e.Kind, e.Available)
}
