// Package adapter bridges engine-declared function signatures to foreign
// function implementations.
//
// An Adapter instantiates a foreign class by name, translates the engine's
// declared parameter and return types into the foreign framework's
// inspectors, lets the implementation run its own type resolution and
// cross-checks the outcome against the declaration. Only fully validated
// functions are ever returned.
//
// Two adapter kinds are provided: GenericAdapter for udf.GenericUDF classes,
// which infer their result type at initialization, and SimpleAdapter for
// udf.SimpleUDF classes, which publish static per-overload signatures.
// Both register themselves in the kind registry (see Register and New).
//
// Adapters are stateless and safe for concurrent use. Load blocks while
// foreign code runs and has no timeout of its own; callers that need one
// apply it around the call.
package adapter

import "github.com/leapstack-labs/leapudf/pkg/core"

// Adapter loads and validates foreign functions of one kind.
type Adapter interface {
	// Kind returns the function kind this adapter hosts.
	Kind() core.FunctionKind

	// Load instantiates className and validates it against the declared
	// return and parameter types. Every failure is a *CatalogError.
	Load(className string, ret core.Type, params []core.Type, opts ...LoadOption) (Function, error)

	// ExtractSignatures returns the signatures the class declares statically.
	// Kinds without static signatures return an empty slice.
	ExtractSignatures(className string) ([]core.Signature, error)
}

// Function is a validated foreign function bound to an engine signature.
// Functions are immutable and safe to read concurrently; whether the wrapped
// instance may be invoked concurrently is up to the implementation.
type Function interface {
	Kind() core.FunctionKind

	// Reference returns the catalog metadata attached at load time, or nil.
	Reference() *core.FunctionReference

	// Signature returns the signature the function was validated against.
	Signature() core.Signature

	// Handle returns the instantiated foreign object.
	Handle() any
}

// LoadOption configures a single Load call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	ref *core.FunctionReference
}

// WithReference attaches a catalog metadata record to the loaded function.
func WithReference(ref *core.FunctionReference) LoadOption {
	return func(o *loadOptions) {
		o.ref = ref
	}
}

func applyOptions(opts []LoadOption) loadOptions {
	var o loadOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
