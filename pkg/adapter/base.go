package adapter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

// baseAdapter provides the steps every adapter kind shares: resolving and
// constructing the class, translating declared types, and turning failures
// into logged CatalogErrors. Embed it in concrete adapters.
type baseAdapter struct {
	kind   core.FunctionKind
	loader udf.ClassLoader
	logger *slog.Logger
}

func newBaseAdapter(kind core.FunctionKind, loader udf.ClassLoader, logger *slog.Logger) baseAdapter {
	if loader == nil {
		loader = udf.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return baseAdapter{kind: kind, loader: loader, logger: logger.With("kind", string(kind))}
}

// Kind returns the function kind this adapter hosts.
func (b *baseAdapter) Kind() core.FunctionKind {
	return b.kind
}

// instantiate resolves className and invokes its no-argument constructor.
func (b *baseAdapter) instantiate(className string, sig core.Signature) (any, error) {
	class, err := b.loader.Resolve(className)
	if err != nil {
		var notFound *udf.ClassNotFoundError
		if errors.As(err, &notFound) {
			return nil, b.fail(ErrClassResolution, className, sig, fmt.Sprintf("class %q not found", className), err)
		}
		return nil, b.fail(ErrClassResolution, className, sig, "unable to resolve class: "+err.Error(), err)
	}
	if class == nil {
		return nil, b.fail(ErrClassResolution, className, sig, fmt.Sprintf("class %q not found", className), nil)
	}
	if class.New == nil {
		return nil, b.fail(ErrConstruction, className, sig, "unable to find constructor with no arguments", nil)
	}

	instance, err := construct(class)
	if err != nil {
		return nil, b.fail(ErrConstruction, className, sig, "unable to create UDF instance: "+err.Error(), err)
	}
	if instance == nil {
		return nil, b.fail(ErrConstruction, className, sig, "unable to create UDF instance: constructor returned nil", nil)
	}
	return instance, nil
}

// construct calls the class constructor, converting a panic into an error.
func construct(class *udf.Class) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			instance, err = nil, fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	return class.New()
}

// translate maps each declared parameter, then the return type, to its
// inspector. Parameters are processed in declared order.
func (b *baseAdapter) translate(className string, sig core.Signature) ([]udf.Inspector, udf.Inspector, error) {
	args := make([]udf.Inspector, len(sig.Params))
	for i, t := range sig.Params {
		inspector, ok := ToInspector(t)
		if !ok {
			return nil, udf.Inspector{}, b.unsupported(className, sig, t)
		}
		args[i] = inspector
	}

	ret, ok := ToInspector(sig.Return)
	if !ok {
		return nil, udf.Inspector{}, b.unsupported(className, sig, sig.Return)
	}
	return args, ret, nil
}

func (b *baseAdapter) unsupported(className string, sig core.Signature, t core.Type) error {
	err := b.fail(ErrUnsupportedType, className, sig, fmt.Sprintf("unsupported type: %s", t), nil)
	err.Type = t
	return err
}

// rejectArguments wraps a foreign argument error so that the message carries
// the full declared parameter list.
func (b *baseAdapter) rejectArguments(className string, sig core.Signature, cause error) error {
	msg := "function cannot be created with the following parameters: " + sig.ParamList()
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return b.fail(ErrForeignArgument, className, sig, msg, cause)
}

func (b *baseAdapter) mismatch(className string, sig core.Signature, inferred udf.Inspector) error {
	msg := fmt.Sprintf("function expected return type %s but was created with %s", inferred.TypeName(), sig.Return)
	return b.fail(ErrReturnTypeMismatch, className, sig, msg, nil)
}

// fail logs the failure with its cause and returns it as a CatalogError.
func (b *baseAdapter) fail(kind error, className string, sig core.Signature, msg string, cause error) *CatalogError {
	err := &CatalogError{
		Kind:      kind,
		ClassName: className,
		Signature: sig,
		Message:   msg,
		Err:       cause,
	}

	attrs := []any{
		"class", className,
		"signature", sig.String(),
		"reason", err.Reason(),
	}
	if cause != nil {
		attrs = append(attrs, "cause", cause.Error())
	}
	b.logger.Error("function validation failed", attrs...)
	return err
}
