// Package starlark hosts foreign functions written in Starlark.
//
// A script defines initialize(arguments) and optionally evaluate(*args) and
// display_string(children); ScriptUDF adapts it to udf.GenericUDF.
package starlark

import (
	"fmt"

	"github.com/leapstack-labs/leapudf/pkg/udf"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// InspectorToStarlark converts an inspector to the struct scripts receive:
// struct(category, primitive_category, type_name).
func InspectorToStarlark(i udf.Inspector) starlark.Value {
	return starlarkstruct.FromStringDict(starlark.String("inspector"), starlark.StringDict{
		"category":           starlark.String(i.Category().String()),
		"primitive_category": starlark.String(i.PrimitiveCategory().String()),
		"type_name":          starlark.String(i.TypeName()),
	})
}

// InspectorFromStarlark converts a script result back to an inspector. It
// accepts an inspector struct, a member name of the inspectors module such
// as "long", or an engine type name such as "bigint".
func InspectorFromStarlark(v starlark.Value) (udf.Inspector, error) {
	var name string
	switch val := v.(type) {
	case starlark.String:
		name = string(val)
	case *starlarkstruct.Struct:
		attr, err := val.Attr("type_name")
		if err != nil {
			return udf.Inspector{}, fmt.Errorf("inspector struct has no type_name")
		}
		s, ok := starlark.AsString(attr)
		if !ok {
			return udf.Inspector{}, fmt.Errorf("inspector type_name must be a string, got %s", attr.Type())
		}
		name = s
	default:
		return udf.Inspector{}, fmt.Errorf("initialize must return an inspector or type name, got %s", v.Type())
	}

	if i, ok := LookupInspector(name); ok {
		return i, nil
	}
	i, ok := udf.InspectorForTypeName(name)
	if !ok {
		return udf.Inspector{}, fmt.Errorf("unknown inspector type %q", name)
	}
	return i, nil
}

// GoToStarlark converts a Go value to a Starlark value.
// Supported types: string, bool, signed integers, float32/64, []string, []any, map[string]any
func GoToStarlark(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}

	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case bool:
		return starlark.Bool(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case int8:
		return starlark.MakeInt(int(val)), nil
	case int16:
		return starlark.MakeInt(int(val)), nil
	case int32:
		return starlark.MakeInt(int(val)), nil
	case int64:
		return starlark.MakeInt64(val), nil
	case float32:
		return starlark.Float(val), nil
	case float64:
		return starlark.Float(val), nil

	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil

	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := GoToStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil

	case map[string]any:
		dict := starlark.NewDict(len(val))
		for k, v := range val {
			sv, err := GoToStarlark(v)
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, fmt.Errorf("dict setkey %q: %w", k, err)
			}
		}
		return dict, nil

	case udf.Inspector:
		return InspectorToStarlark(val), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToGo converts a Starlark value back to a Go value.
// Returns: string, int64, float64, bool, []any, map[string]any, or nil
func ToGo(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil

	case starlark.String:
		return string(val), nil

	case starlark.Int:
		i64, ok := val.Int64()
		if !ok {
			return nil, fmt.Errorf("integer %s overflows int64", val.String())
		}
		return i64, nil

	case starlark.Float:
		return float64(val), nil

	case starlark.Bool:
		return bool(val), nil

	case starlark.Indexable:
		// list and tuple
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := ToGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	case *starlark.Dict:
		result := make(map[string]any)
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			gv, err := ToGo(item[1])
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", key, err)
			}
			result[string(key)] = gv
		}
		return result, nil

	default:
		return nil, fmt.Errorf("cannot convert %s to a Go value", v.Type())
	}
}
