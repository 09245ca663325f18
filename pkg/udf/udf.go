// Package udf defines the foreign function framework hosted by leapudf:
// its type-descriptor vocabulary (Inspector), the function contracts
// (GenericUDF, SimpleUDF), its argument-error convention and the class
// registry used to construct implementations by name.
//
// Nothing in this package knows about engine types; translation between
// the two type systems lives in pkg/adapter.
package udf

import "fmt"

// DeferredObject is a lazily evaluated argument passed to Evaluate.
type DeferredObject interface {
	Get() (any, error)
}

// DeferredValue is a DeferredObject holding an already computed value.
type DeferredValue struct {
	Value any
}

// Get returns the held value.
func (d DeferredValue) Get() (any, error) { return d.Value, nil }

// GenericUDF is a function that resolves its own result type at run time.
//
// Initialize receives one inspector per argument, validates them by the
// implementation's own rules and returns the inspector of the result.
// Argument problems are reported with *ArgumentError.
type GenericUDF interface {
	Initialize(arguments []Inspector) (Inspector, error)
	Evaluate(arguments []DeferredObject) (any, error)
	DisplayString(children []string) string
}

// Closer is implemented by functions holding resources that must be
// released when the owning catalog drops them.
type Closer interface {
	Close() error
}

// Overload is one statically declared evaluation signature of a SimpleUDF.
type Overload struct {
	Args   []PrimitiveCategory
	Result PrimitiveCategory
	Eval   func(args []any) (any, error)
}

// SimpleUDF is a function that publishes its signatures up front, one per overload.
type SimpleUDF interface {
	Overloads() []Overload
}

// ArgumentError is the framework's way of rejecting the arguments handed to Initialize.
type ArgumentError struct {
	// Index is the offending argument position, or -1 when not specific to one argument.
	Index   int
	Message string
}

// NewArgumentError returns an ArgumentError that is not tied to one argument.
func NewArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Index: -1, Message: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("argument %d: %s", e.Index+1, e.Message)
	}
	return e.Message
}
