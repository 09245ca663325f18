package adapter

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapudf/pkg/core"
)

// Error kinds. Every *CatalogError matches exactly one of these with errors.Is.
// None of them is retryable: the same class and signature fail the same way.
var (
	// ErrClassResolution means the class name does not resolve to a loadable class.
	ErrClassResolution = errors.New("class resolution failed")

	// ErrConstruction means the class has no no-argument constructor, the
	// constructor failed, or the result does not implement the expected contract.
	ErrConstruction = errors.New("construction failed")

	// ErrUnsupportedType means a declared type has no foreign counterpart.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrForeignArgument means the implementation rejected the declared parameters.
	ErrForeignArgument = errors.New("foreign function rejected arguments")

	// ErrReturnTypeMismatch means the inferred result type differs from the declared one.
	ErrReturnTypeMismatch = errors.New("return type mismatch")
)

var reasons = map[error]string{
	ErrClassResolution:    "class_resolution",
	ErrConstruction:       "construction",
	ErrUnsupportedType:    "unsupported_type",
	ErrForeignArgument:    "foreign_argument",
	ErrReturnTypeMismatch: "return_type_mismatch",
}

// CatalogError is the structured failure returned by Load and ExtractSignatures.
type CatalogError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	ClassName string
	Signature core.Signature
	Message   string

	// Type is the offending type for ErrUnsupportedType.
	Type core.Type

	// Err is the underlying cause, if any.
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("error retrieving class %s: %s", e.ClassName, e.Message)
}

// Unwrap returns the underlying cause.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Is matches the error's kind sentinel.
func (e *CatalogError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// Reason returns a short machine-readable code for the error kind,
// e.g. "return_type_mismatch".
func (e *CatalogError) Reason() string {
	if r, ok := reasons[e.Kind]; ok {
		return r
	}
	return "unknown"
}

// Reason returns the CatalogError reason code found in err's chain, or ""
// when err is not a CatalogError.
func Reason(err error) string {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Reason()
	}
	return ""
}
