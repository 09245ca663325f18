package udf

import "strings"

// Category is the coarse shape of a value described by an Inspector.
type Category int

// Category constants.
const (
	CategoryPrimitive Category = iota
	CategoryList
	CategoryMap
	CategoryStruct
	CategoryUnion
)

// String returns the upper-case category name.
func (c Category) String() string {
	switch c {
	case CategoryPrimitive:
		return "PRIMITIVE"
	case CategoryList:
		return "LIST"
	case CategoryMap:
		return "MAP"
	case CategoryStruct:
		return "STRUCT"
	case CategoryUnion:
		return "UNION"
	default:
		return "UNKNOWN"
	}
}

// PrimitiveCategory identifies a primitive value kind in the framework.
type PrimitiveCategory int

// PrimitiveCategory constants.
const (
	PrimitiveUnknown PrimitiveCategory = iota
	PrimitiveVoid
	PrimitiveBoolean
	PrimitiveByte
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveString
	PrimitiveDate
	PrimitiveTimestamp
	PrimitiveBinary
	PrimitiveDecimal
)

type primitiveInfo struct {
	category string // upper-case category name, e.g. STRING
	typeName string // lower-case type name, e.g. string
}

var primitiveInfos = map[PrimitiveCategory]primitiveInfo{
	PrimitiveUnknown:   {"UNKNOWN", "unknown"},
	PrimitiveVoid:      {"VOID", "void"},
	PrimitiveBoolean:   {"BOOLEAN", "boolean"},
	PrimitiveByte:      {"BYTE", "tinyint"},
	PrimitiveShort:     {"SHORT", "smallint"},
	PrimitiveInt:       {"INT", "int"},
	PrimitiveLong:      {"LONG", "bigint"},
	PrimitiveFloat:     {"FLOAT", "float"},
	PrimitiveDouble:    {"DOUBLE", "double"},
	PrimitiveString:    {"STRING", "string"},
	PrimitiveDate:      {"DATE", "date"},
	PrimitiveTimestamp: {"TIMESTAMP", "timestamp"},
	PrimitiveBinary:    {"BINARY", "binary"},
	PrimitiveDecimal:   {"DECIMAL", "decimal"},
}

// String returns the upper-case primitive category name.
func (p PrimitiveCategory) String() string {
	if info, ok := primitiveInfos[p]; ok {
		return info.category
	}
	return "UNKNOWN"
}

// TypeName returns the lower-case type name the framework reports for the category.
func (p PrimitiveCategory) TypeName() string {
	if info, ok := primitiveInfos[p]; ok {
		return info.typeName
	}
	return "unknown"
}

// ParsePrimitiveCategory resolves an upper-case category name such as "STRING".
func ParsePrimitiveCategory(name string) (PrimitiveCategory, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for p, info := range primitiveInfos {
		if info.category == upper {
			return p, true
		}
	}
	return PrimitiveUnknown, false
}

// Inspector is the framework's runtime type descriptor. Inspectors are
// comparable values: two inspectors describe the same type iff they are ==.
type Inspector struct {
	category  Category
	primitive PrimitiveCategory
}

// PrimitiveInspector returns the writable inspector for a primitive category.
func PrimitiveInspector(p PrimitiveCategory) Inspector {
	return Inspector{category: CategoryPrimitive, primitive: p}
}

// The fixed writable inspector vocabulary.
var (
	WritableBooleanInspector = PrimitiveInspector(PrimitiveBoolean)
	WritableByteInspector    = PrimitiveInspector(PrimitiveByte)
	WritableShortInspector   = PrimitiveInspector(PrimitiveShort)
	WritableIntInspector     = PrimitiveInspector(PrimitiveInt)
	WritableLongInspector    = PrimitiveInspector(PrimitiveLong)
	WritableFloatInspector   = PrimitiveInspector(PrimitiveFloat)
	WritableDoubleInspector  = PrimitiveInspector(PrimitiveDouble)
	WritableStringInspector  = PrimitiveInspector(PrimitiveString)

	// VoidInspector is the "no fixed type" sentinel: a function returning it
	// defers result typing to call time.
	VoidInspector = PrimitiveInspector(PrimitiveVoid)
)

// Category returns the inspector's category.
func (i Inspector) Category() Category { return i.category }

// PrimitiveCategory returns the primitive category (PrimitiveUnknown for non-primitives).
func (i Inspector) PrimitiveCategory() PrimitiveCategory {
	if i.category != CategoryPrimitive {
		return PrimitiveUnknown
	}
	return i.primitive
}

// TypeName returns the framework type name, e.g. "string" or "void".
func (i Inspector) TypeName() string {
	if i.category != CategoryPrimitive {
		return strings.ToLower(i.category.String())
	}
	return i.primitive.TypeName()
}

// IsVoid reports whether the inspector is the "no fixed type" sentinel.
func (i Inspector) IsVoid() bool {
	return i.TypeName() == "void"
}

// String implements fmt.Stringer.
func (i Inspector) String() string {
	return i.TypeName()
}

// InspectorForTypeName resolves a framework type name ("string", "bigint",
// "void", ...) to its writable primitive inspector.
func InspectorForTypeName(name string) (Inspector, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for p, info := range primitiveInfos {
		if p != PrimitiveUnknown && info.typeName == lower {
			return PrimitiveInspector(p), true
		}
	}
	return Inspector{}, false
}
