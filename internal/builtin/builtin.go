// Package builtin provides Go-native foreign functions. Importing it adds
// them to udf.Default().
package builtin

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

func init() {
	udf.Register(&udf.Class{
		Name:        "builtin.Upper",
		Kind:        core.KindGeneric,
		Description: "Upper-cases a string.",
		New:         func() (any, error) { return &Upper{}, nil },
	})
	udf.Register(&udf.Class{
		Name:        "builtin.Length",
		Kind:        core.KindGeneric,
		Description: "Returns the number of characters in a string.",
		New:         func() (any, error) { return &Length{}, nil },
	})
	udf.Register(&udf.Class{
		Name:        "builtin.Coalesce",
		Kind:        core.KindGeneric,
		Description: "Returns the first non-null argument; the result type is decided per call.",
		New:         func() (any, error) { return &Coalesce{}, nil },
	})
	udf.Register(&udf.Class{
		Name:        "builtin.Abs",
		Kind:        core.KindSimple,
		Description: "Absolute value of an int, bigint or double.",
		New:         func() (any, error) { return Abs{}, nil },
	})
}

// requireArgs checks the argument count and that each argument is one of
// the accepted inspectors.
func requireArgs(name string, arguments []udf.Inspector, accepted ...udf.Inspector) error {
	if len(arguments) != 1 {
		return udf.NewArgumentError("%s takes exactly one argument, got %d", name, len(arguments))
	}
	for _, a := range accepted {
		if arguments[0] == a {
			return nil
		}
	}
	return &udf.ArgumentError{Index: 0, Message: fmt.Sprintf("%s does not accept %s", name, arguments[0].TypeName())}
}

func firstString(arguments []udf.DeferredObject) (string, bool, error) {
	if len(arguments) != 1 {
		return "", false, fmt.Errorf("expected one argument, got %d", len(arguments))
	}
	v, err := arguments[0].Get()
	if err != nil || v == nil {
		return "", false, err
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("expected string, got %T", v)
	}
	return s, true, nil
}

// Upper is upper(string) -> string.
type Upper struct{}

func (*Upper) Initialize(arguments []udf.Inspector) (udf.Inspector, error) {
	if err := requireArgs("upper", arguments, udf.WritableStringInspector); err != nil {
		return udf.Inspector{}, err
	}
	return udf.WritableStringInspector, nil
}

func (*Upper) Evaluate(arguments []udf.DeferredObject) (any, error) {
	s, ok, err := firstString(arguments)
	if err != nil || !ok {
		return nil, err
	}
	return strings.ToUpper(s), nil
}

func (*Upper) DisplayString(children []string) string {
	return "upper(" + strings.Join(children, ", ") + ")"
}

// Length is length(string) -> int, counting runes.
type Length struct{}

func (*Length) Initialize(arguments []udf.Inspector) (udf.Inspector, error) {
	if err := requireArgs("length", arguments, udf.WritableStringInspector); err != nil {
		return udf.Inspector{}, err
	}
	return udf.WritableIntInspector, nil
}

func (*Length) Evaluate(arguments []udf.DeferredObject) (any, error) {
	s, ok, err := firstString(arguments)
	if err != nil || !ok {
		return nil, err
	}
	return int32(len([]rune(s))), nil
}

func (*Length) DisplayString(children []string) string {
	return "length(" + strings.Join(children, ", ") + ")"
}

// Coalesce accepts one or more arguments and reports the void inspector.
type Coalesce struct{}

func (*Coalesce) Initialize(arguments []udf.Inspector) (udf.Inspector, error) {
	if len(arguments) == 0 {
		return udf.Inspector{}, udf.NewArgumentError("coalesce needs at least one argument")
	}
	return udf.VoidInspector, nil
}

func (*Coalesce) Evaluate(arguments []udf.DeferredObject) (any, error) {
	for _, a := range arguments {
		v, err := a.Get()
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}

func (*Coalesce) DisplayString(children []string) string {
	return "coalesce(" + strings.Join(children, ", ") + ")"
}

// Abs publishes one overload per numeric category.
type Abs struct{}

func (Abs) Overloads() []udf.Overload {
	return []udf.Overload{
		{
			Args:   []udf.PrimitiveCategory{udf.PrimitiveInt},
			Result: udf.PrimitiveInt,
			Eval: func(args []any) (any, error) {
				v, ok := args[0].(int32)
				if !ok {
					return nil, fmt.Errorf("expected int32, got %T", args[0])
				}
				if v < 0 {
					v = -v
				}
				return v, nil
			},
		},
		{
			Args:   []udf.PrimitiveCategory{udf.PrimitiveLong},
			Result: udf.PrimitiveLong,
			Eval: func(args []any) (any, error) {
				v, ok := args[0].(int64)
				if !ok {
					return nil, fmt.Errorf("expected int64, got %T", args[0])
				}
				if v < 0 {
					v = -v
				}
				return v, nil
			},
		},
		{
			Args:   []udf.PrimitiveCategory{udf.PrimitiveDouble},
			Result: udf.PrimitiveDouble,
			Eval: func(args []any) (any, error) {
				v, ok := args[0].(float64)
				if !ok {
					return nil, fmt.Errorf("expected float64, got %T", args[0])
				}
				if v < 0 {
					v = -v
				}
				return v, nil
			},
		},
	}
}
