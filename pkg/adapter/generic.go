package adapter

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

func init() {
	Register(core.KindGeneric, func(loader udf.ClassLoader, logger *slog.Logger) Adapter {
		return NewGenericAdapter(loader, logger)
	})
}

// GenericAdapter hosts udf.GenericUDF classes. Their signatures cannot be
// read ahead of time: the result type is only known once Initialize has run
// against concrete argument inspectors.
type GenericAdapter struct {
	baseAdapter
}

// NewGenericAdapter creates a GenericAdapter. A nil loader uses udf.Default();
// a nil logger discards output.
func NewGenericAdapter(loader udf.ClassLoader, logger *slog.Logger) *GenericAdapter {
	return &GenericAdapter{baseAdapter: newBaseAdapter(core.KindGeneric, loader, logger)}
}

// Load implements Adapter.
func (a *GenericAdapter) Load(className string, ret core.Type, params []core.Type, opts ...LoadOption) (Function, error) {
	fn, err := a.LoadGeneric(className, ret, params, opts...)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// LoadGeneric instantiates className, translates the declared types, runs the
// class's own Initialize and checks the inferred result type against ret.
//
// A void result is accepted for any supported ret: the function decides its
// result type per call.
func (a *GenericAdapter) LoadGeneric(className string, ret core.Type, params []core.Type, opts ...LoadOption) (*GenericFunction, error) {
	o := applyOptions(opts)
	sig := core.NewSignature(ret, params...)

	instance, err := a.instantiate(className, sig)
	if err != nil {
		return nil, err
	}
	fn, ok := instance.(udf.GenericUDF)
	if !ok {
		return nil, a.fail(ErrConstruction, className, sig,
			fmt.Sprintf("unable to create UDF instance: %T does not implement GenericUDF", instance), nil)
	}

	args, expected, err := a.translate(className, sig)
	if err != nil {
		return nil, err
	}

	inferred, err := initialize(fn, args)
	if err != nil {
		return nil, a.rejectArguments(className, sig, err)
	}
	if inferred != expected && !inferred.IsVoid() {
		return nil, a.mismatch(className, sig, inferred)
	}

	return &GenericFunction{
		ref:       o.ref,
		signature: sig,
		udf:       fn,
	}, nil
}

// ExtractSignatures always returns an empty slice: generic functions only
// reveal their types at initialization. The class is not resolved.
func (a *GenericAdapter) ExtractSignatures(_ string) ([]core.Signature, error) {
	return []core.Signature{}, nil
}

// initialize runs the foreign Initialize, converting a panic into an error.
func initialize(fn udf.GenericUDF, args []udf.Inspector) (result udf.Inspector, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = udf.Inspector{}, fmt.Errorf("initialize panicked: %v", r)
		}
	}()
	return fn.Initialize(args)
}

// GenericFunction is a validated udf.GenericUDF instance bound to its signature.
type GenericFunction struct {
	ref       *core.FunctionReference
	signature core.Signature
	udf       udf.GenericUDF
}

// Kind implements Function.
func (f *GenericFunction) Kind() core.FunctionKind {
	return core.KindGeneric
}

// Reference implements Function.
func (f *GenericFunction) Reference() *core.FunctionReference {
	return f.ref
}

// Signature implements Function. The returned parameter slice is a copy.
func (f *GenericFunction) Signature() core.Signature {
	return core.NewSignature(f.signature.Return, f.signature.Params...)
}

// ReturnType returns the declared return type.
func (f *GenericFunction) ReturnType() core.Type {
	return f.signature.Return
}

// ParameterTypes returns a copy of the declared parameter types.
func (f *GenericFunction) ParameterTypes() []core.Type {
	return f.Signature().Params
}

// Handle implements Function.
func (f *GenericFunction) Handle() any {
	return f.udf
}

// UDF returns the instance with its concrete contract.
func (f *GenericFunction) UDF() udf.GenericUDF {
	return f.udf
}
