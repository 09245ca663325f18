package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

// stringIdentity accepts exactly one string argument and returns string.
type stringIdentity struct {
	initCalls *int
}

func (u *stringIdentity) Initialize(arguments []udf.Inspector) (udf.Inspector, error) {
	if u.initCalls != nil {
		*u.initCalls++
	}
	if len(arguments) != 1 {
		return udf.Inspector{}, udf.NewArgumentError("expected exactly one argument, got %d", len(arguments))
	}
	if arguments[0] != udf.WritableStringInspector {
		return udf.Inspector{}, &udf.ArgumentError{Index: 0, Message: "expected string, got " + arguments[0].TypeName()}
	}
	return udf.WritableStringInspector, nil
}

func (u *stringIdentity) Evaluate(arguments []udf.DeferredObject) (any, error) {
	return arguments[0].Get()
}

func (u *stringIdentity) DisplayString(children []string) string {
	return "string_identity(" + strings.Join(children, ", ") + ")"
}

// fixedResult returns a fixed inspector regardless of arguments.
type fixedResult struct {
	result udf.Inspector
}

func (u *fixedResult) Initialize(_ []udf.Inspector) (udf.Inspector, error) { return u.result, nil }
func (u *fixedResult) Evaluate(_ []udf.DeferredObject) (any, error)       { return nil, nil }
func (u *fixedResult) DisplayString(_ []string) string                    { return "fixed()" }

type panicking struct{}

func (panicking) Initialize(_ []udf.Inspector) (udf.Inspector, error) { panic("boom") }
func (panicking) Evaluate(_ []udf.DeferredObject) (any, error)       { return nil, nil }
func (panicking) DisplayString(_ []string) string                    { return "panicking()" }

type overloaded struct{}

func (overloaded) Overloads() []udf.Overload {
	return []udf.Overload{
		{Args: []udf.PrimitiveCategory{udf.PrimitiveInt}, Result: udf.PrimitiveInt},
		{Args: []udf.PrimitiveCategory{udf.PrimitiveDouble}, Result: udf.PrimitiveDouble},
		{Args: []udf.PrimitiveCategory{udf.PrimitiveString, udf.PrimitiveInt}, Result: udf.PrimitiveVoid},
		{Args: []udf.PrimitiveCategory{udf.PrimitiveDecimal}, Result: udf.PrimitiveDecimal},
	}
}

type notAFunction struct{}

// testLoader builds a registry with the fixture classes. initCalls counts
// Initialize invocations on string_identity.
func testLoader(initCalls *int) *udf.Registry {
	r := udf.NewRegistry()
	r.MustRegister(&udf.Class{
		Name: "test.StringIdentity",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return &stringIdentity{initCalls: initCalls}, nil },
	})
	r.MustRegister(&udf.Class{
		Name: "test.Void",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return &fixedResult{result: udf.VoidInspector}, nil },
	})
	r.MustRegister(&udf.Class{
		Name: "test.ReturnsLong",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return &fixedResult{result: udf.WritableLongInspector}, nil },
	})
	r.MustRegister(&udf.Class{
		Name: "test.NoConstructor",
		Kind: core.KindGeneric,
	})
	r.MustRegister(&udf.Class{
		Name: "test.FailingConstructor",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return nil, errors.New("missing resource") },
	})
	r.MustRegister(&udf.Class{
		Name: "test.PanickingConstructor",
		Kind: core.KindGeneric,
		New:  func() (any, error) { panic("constructor exploded") },
	})
	r.MustRegister(&udf.Class{
		Name: "test.PanickingInitialize",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return panicking{}, nil },
	})
	r.MustRegister(&udf.Class{
		Name: "test.NotAFunction",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return notAFunction{}, nil },
	})
	r.MustRegister(&udf.Class{
		Name: "test.Overloaded",
		Kind: core.KindSimple,
		New:  func() (any, error) { return overloaded{}, nil },
	})
	return r
}

// failingLoader fails every resolution with a non-lookup error.
type failingLoader struct{}

func (failingLoader) Resolve(name string) (*udf.Class, error) {
	return nil, fmt.Errorf("loader offline while resolving %s", name)
}
