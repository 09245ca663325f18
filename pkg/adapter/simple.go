package adapter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

func init() {
	Register(core.KindSimple, func(loader udf.ClassLoader, logger *slog.Logger) Adapter {
		return NewSimpleAdapter(loader, logger)
	})
}

// SimpleAdapter hosts udf.SimpleUDF classes, which declare one signature per
// overload and can therefore be introspected before registration.
type SimpleAdapter struct {
	baseAdapter
}

// NewSimpleAdapter creates a SimpleAdapter. A nil loader uses udf.Default();
// a nil logger discards output.
func NewSimpleAdapter(loader udf.ClassLoader, logger *slog.Logger) *SimpleAdapter {
	return &SimpleAdapter{baseAdapter: newBaseAdapter(core.KindSimple, loader, logger)}
}

// Load implements Adapter.
func (a *SimpleAdapter) Load(className string, ret core.Type, params []core.Type, opts ...LoadOption) (Function, error) {
	fn, err := a.LoadSimple(className, ret, params, opts...)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// LoadSimple instantiates className and binds the overload whose argument
// categories match the translated parameters exactly.
func (a *SimpleAdapter) LoadSimple(className string, ret core.Type, params []core.Type, opts ...LoadOption) (*SimpleFunction, error) {
	o := applyOptions(opts)
	sig := core.NewSignature(ret, params...)

	fn, err := a.instantiateSimple(className, sig)
	if err != nil {
		return nil, err
	}

	args, expected, err := a.translate(className, sig)
	if err != nil {
		return nil, err
	}

	overloads := fn.Overloads()
	idx := matchOverload(overloads, args)
	if idx < 0 {
		return nil, a.rejectArguments(className, sig,
			udf.NewArgumentError("no overload accepts these arguments; declared overloads: %s", describeOverloads(overloads)))
	}

	inferred := udf.PrimitiveInspector(overloads[idx].Result)
	if inferred != expected && !inferred.IsVoid() {
		return nil, a.mismatch(className, sig, inferred)
	}

	return &SimpleFunction{
		ref:       o.ref,
		signature: sig,
		udf:       fn,
		overload:  overloads[idx],
	}, nil
}

// ExtractSignatures instantiates className and translates every overload
// whose categories all have engine counterparts. Other overloads are skipped.
func (a *SimpleAdapter) ExtractSignatures(className string) ([]core.Signature, error) {
	fn, err := a.instantiateSimple(className, core.Signature{})
	if err != nil {
		return nil, err
	}

	sigs := []core.Signature{}
	for _, ov := range fn.Overloads() {
		sig, ok := overloadSignature(ov)
		if !ok {
			a.logger.Debug("skipping overload without engine types", "class", className, "overload", describeOverload(ov))
			continue
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func (a *SimpleAdapter) instantiateSimple(className string, sig core.Signature) (udf.SimpleUDF, error) {
	instance, err := a.instantiate(className, sig)
	if err != nil {
		return nil, err
	}
	fn, ok := instance.(udf.SimpleUDF)
	if !ok {
		return nil, a.fail(ErrConstruction, className, sig,
			fmt.Sprintf("unable to create UDF instance: %T does not implement SimpleUDF", instance), nil)
	}
	return fn, nil
}

func matchOverload(overloads []udf.Overload, args []udf.Inspector) int {
	for i, ov := range overloads {
		if len(ov.Args) != len(args) {
			continue
		}
		match := true
		for j, category := range ov.Args {
			if udf.PrimitiveInspector(category) != args[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func overloadSignature(ov udf.Overload) (core.Signature, bool) {
	ret, ok := FromPrimitiveCategory(ov.Result)
	if !ok {
		return core.Signature{}, false
	}
	params := make([]core.Type, len(ov.Args))
	for i, category := range ov.Args {
		t, ok := FromPrimitiveCategory(category)
		if !ok {
			return core.Signature{}, false
		}
		params[i] = t
	}
	return core.Signature{Params: params, Return: ret}, true
}

func describeOverload(ov udf.Overload) string {
	names := make([]string, len(ov.Args))
	for i, category := range ov.Args {
		names[i] = category.TypeName()
	}
	return "(" + strings.Join(names, ",") + ") -> " + ov.Result.TypeName()
}

func describeOverloads(overloads []udf.Overload) string {
	if len(overloads) == 0 {
		return "none"
	}
	parts := make([]string, len(overloads))
	for i, ov := range overloads {
		parts[i] = describeOverload(ov)
	}
	return strings.Join(parts, ", ")
}

// SimpleFunction is a validated udf.SimpleUDF instance bound to one overload.
type SimpleFunction struct {
	ref       *core.FunctionReference
	signature core.Signature
	udf       udf.SimpleUDF
	overload  udf.Overload
}

// Kind implements Function.
func (f *SimpleFunction) Kind() core.FunctionKind {
	return core.KindSimple
}

// Reference implements Function.
func (f *SimpleFunction) Reference() *core.FunctionReference {
	return f.ref
}

// Signature implements Function. The returned parameter slice is a copy.
func (f *SimpleFunction) Signature() core.Signature {
	return core.NewSignature(f.signature.Return, f.signature.Params...)
}

// Handle implements Function.
func (f *SimpleFunction) Handle() any {
	return f.udf
}

// Overload returns the overload selected for the declared parameters.
func (f *SimpleFunction) Overload() udf.Overload {
	return f.overload
}
