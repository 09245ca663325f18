package adapter

import (
	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

// inspectorByType is the fixed engine -> foreign mapping. Types missing here
// are unsupported.
var inspectorByType = map[core.PrimitiveType]udf.Inspector{
	core.Boolean:  udf.WritableBooleanInspector,
	core.TinyInt:  udf.WritableByteInspector,
	core.SmallInt: udf.WritableShortInspector,
	core.Int:      udf.WritableIntInspector,
	core.BigInt:   udf.WritableLongInspector,
	core.Float:    udf.WritableFloatInspector,
	core.Double:   udf.WritableDoubleInspector,
	core.String:   udf.WritableStringInspector,
}

// typeByCategory is the inverse of inspectorByType.
var typeByCategory = map[udf.PrimitiveCategory]core.PrimitiveType{
	udf.PrimitiveBoolean: core.Boolean,
	udf.PrimitiveByte:    core.TinyInt,
	udf.PrimitiveShort:   core.SmallInt,
	udf.PrimitiveInt:     core.Int,
	udf.PrimitiveLong:    core.BigInt,
	udf.PrimitiveFloat:   core.Float,
	udf.PrimitiveDouble:  core.Double,
	udf.PrimitiveString:  core.String,
}

// ToInspector translates an engine type to the foreign framework's writable
// inspector. It reports false for unsupported types.
func ToInspector(t core.Type) (udf.Inspector, bool) {
	i, ok := inspectorByType[t.Primitive]
	return i, ok
}

// FromPrimitiveCategory translates a foreign primitive category back to an
// engine type. It reports false for categories without an engine counterpart,
// including the void sentinel.
func FromPrimitiveCategory(p udf.PrimitiveCategory) (core.Type, bool) {
	t, ok := typeByCategory[p]
	if !ok {
		return core.Type{}, false
	}
	return core.Scalar(t), true
}

// IsSupported reports whether t can cross into the foreign framework.
func IsSupported(t core.Type) bool {
	_, ok := ToInspector(t)
	return ok
}

// TypeMapping is one row of the engine -> foreign translation table.
type TypeMapping struct {
	Type      core.Type
	Inspector udf.Inspector
	Supported bool
}

// Mappings returns the translation outcome for every engine primitive type,
// in engine declaration order.
func Mappings() []TypeMapping {
	primitives := core.AllPrimitiveTypes()
	rows := make([]TypeMapping, 0, len(primitives))
	for _, p := range primitives {
		t := core.Scalar(p)
		i, ok := ToInspector(t)
		rows = append(rows, TypeMapping{Type: t, Inspector: i, Supported: ok})
	}
	return rows
}
