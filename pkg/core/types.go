package core

import (
	"fmt"
	"strconv"
	"strings"
)

// PrimitiveType is the engine's primitive type tag.
type PrimitiveType int

// PrimitiveType constants. Order is not significant outside this package.
const (
	InvalidType PrimitiveType = iota
	NullType
	Boolean
	TinyInt
	SmallInt
	Int
	BigInt
	Float
	Double
	Date
	DateTime
	Timestamp
	String
	Varchar
	Char
	Binary
	Decimal
)

var primitiveNames = map[PrimitiveType]string{
	InvalidType: "INVALID_TYPE",
	NullType:    "NULL_TYPE",
	Boolean:     "BOOLEAN",
	TinyInt:     "TINYINT",
	SmallInt:    "SMALLINT",
	Int:         "INT",
	BigInt:      "BIGINT",
	Float:       "FLOAT",
	Double:      "DOUBLE",
	Date:        "DATE",
	DateTime:    "DATETIME",
	Timestamp:   "TIMESTAMP",
	String:      "STRING",
	Varchar:     "VARCHAR",
	Char:        "CHAR",
	Binary:      "BINARY",
	Decimal:     "DECIMAL",
}

// typeAliases maps lower-case SQL spellings to primitive types.
var typeAliases = map[string]PrimitiveType{
	"null_type": NullType,
	"boolean":   Boolean,
	"bool":      Boolean,
	"tinyint":   TinyInt,
	"smallint":  SmallInt,
	"int":       Int,
	"integer":   Int,
	"bigint":    BigInt,
	"float":     Float,
	"real":      Float,
	"double":    Double,
	"date":      Date,
	"datetime":  DateTime,
	"timestamp": Timestamp,
	"string":    String,
	"varchar":   Varchar,
	"char":      Char,
	"binary":    Binary,
	"decimal":   Decimal,
}

// String returns the upper-case SQL name of the primitive type.
func (p PrimitiveType) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return "INVALID_TYPE"
}

// AllPrimitiveTypes returns every valid primitive type in declaration order.
func AllPrimitiveTypes() []PrimitiveType {
	types := make([]PrimitiveType, 0, len(primitiveNames)-1)
	for p := NullType; p <= Decimal; p++ {
		types = append(types, p)
	}
	return types
}

// Type is an engine type descriptor. Len applies to CHAR and VARCHAR;
// Precision and Scale apply to DECIMAL.
type Type struct {
	Primitive PrimitiveType
	Len       int
	Precision int
	Scale     int
}

// Scalar returns the Type for a primitive with no parameters.
func Scalar(p PrimitiveType) Type {
	return Type{Primitive: p}
}

// Common scalar types.
var (
	TypeBoolean  = Scalar(Boolean)
	TypeTinyInt  = Scalar(TinyInt)
	TypeSmallInt = Scalar(SmallInt)
	TypeInt      = Scalar(Int)
	TypeBigInt   = Scalar(BigInt)
	TypeFloat    = Scalar(Float)
	TypeDouble   = Scalar(Double)
	TypeString   = Scalar(String)
	TypeDate     = Scalar(Date)
)

// String renders the type the way it appears in DDL, e.g. INT or VARCHAR(10).
func (t Type) String() string {
	switch t.Primitive {
	case Varchar, Char:
		if t.Len > 0 {
			return fmt.Sprintf("%s(%d)", t.Primitive, t.Len)
		}
	case Decimal:
		if t.Precision > 0 {
			return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision, t.Scale)
		}
	}
	return t.Primitive.String()
}

// IsValid reports whether the type has a known primitive tag.
func (t Type) IsValid() bool {
	_, ok := primitiveNames[t.Primitive]
	return ok && t.Primitive != InvalidType
}

// ParseType parses a SQL type name such as "int", "STRING", "varchar(20)"
// or "decimal(10, 2)". Parsing is case-insensitive.
func ParseType(s string) (Type, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Type{}, fmt.Errorf("empty type name")
	}

	name := strings.ToLower(raw)
	var params []int
	if open := strings.IndexByte(name, '('); open >= 0 {
		if !strings.HasSuffix(name, ")") {
			return Type{}, fmt.Errorf("invalid type %q: unbalanced parentheses", raw)
		}
		for _, part := range strings.Split(name[open+1:len(name)-1], ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 {
				return Type{}, fmt.Errorf("invalid type %q: bad parameter %q", raw, strings.TrimSpace(part))
			}
			params = append(params, n)
		}
		name = strings.TrimSpace(name[:open])
	}

	p, ok := typeAliases[name]
	if !ok {
		return Type{}, fmt.Errorf("unknown type %q", raw)
	}

	t := Type{Primitive: p}
	switch {
	case len(params) == 0:
	case (p == Varchar || p == Char) && len(params) == 1:
		t.Len = params[0]
	case p == Decimal && len(params) <= 2:
		t.Precision = params[0]
		if len(params) == 2 {
			t.Scale = params[1]
		}
		if t.Scale > t.Precision {
			return Type{}, fmt.Errorf("invalid type %q: scale exceeds precision", raw)
		}
	default:
		return Type{}, fmt.Errorf("invalid type %q: %s does not take %d parameter(s)", raw, p, len(params))
	}
	return t, nil
}

// ParseTypes parses a list of SQL type names, failing on the first bad entry.
func ParseTypes(names []string) ([]Type, error) {
	types := make([]Type, 0, len(names))
	for i, name := range names {
		t, err := ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		types = append(types, t)
	}
	return types, nil
}
