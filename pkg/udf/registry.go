package udf

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapudf/pkg/core"
)

// Class is a constructible function implementation, addressed by name.
type Class struct {
	Name        string
	Kind        core.FunctionKind
	Description string

	// New is the no-argument constructor. A nil New means the class cannot be
	// constructed without arguments.
	New func() (any, error)
}

// ClassLoader resolves class names to constructible classes.
type ClassLoader interface {
	Resolve(name string) (*Class, error)
}

// Registry is a concurrency-safe ClassLoader backed by a name -> Class map.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// NewRegistryFrom creates a registry pre-populated with every class of parent.
func NewRegistryFrom(parent *Registry) *Registry {
	r := NewRegistry()
	if parent == nil {
		return r
	}
	parent.mu.RLock()
	defer parent.mu.RUnlock()
	for name, c := range parent.classes {
		r.classes[name] = c
	}
	return r
}

// Register adds a class. Names must be unique within a registry.
func (r *Registry) Register(c *Class) error {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("class name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.classes[c.Name]; exists {
		return fmt.Errorf("class %q already registered", c.Name)
	}
	r.classes[c.Name] = c
	return nil
}

// MustRegister is Register for init-time registration; it panics on error.
func (r *Registry) MustRegister(c *Class) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Resolve implements ClassLoader.
func (r *Registry) Resolve(name string) (*Class, error) {
	r.mu.RLock()
	c, ok := r.classes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &ClassNotFoundError{Name: name, Available: r.Names()}
	}
	return c, nil
}

// Names returns all registered class names (sorted).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Classes returns all registered classes sorted by name.
func (r *Registry) Classes() []*Class {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	classes := make([]*Class, 0, len(names))
	for _, name := range names {
		if c, ok := r.classes[name]; ok {
			classes = append(classes, c)
		}
	}
	return classes
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that built-in classes add
// themselves to from init().
func Default() *Registry {
	return defaultRegistry
}

// Register adds a class to the default registry.
// Called by class implementations in their init() functions.
func Register(c *Class) {
	defaultRegistry.MustRegister(c)
}

// ClassNotFoundError is returned when a class name cannot be resolved.
type ClassNotFoundError struct {
	Name      string
	Available []string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("class %q not found\nAvailable classes: %v", e.Name, e.Available)
}
