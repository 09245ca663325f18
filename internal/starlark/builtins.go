package starlark

import (
	"sort"

	"github.com/leapstack-labs/leapudf/pkg/udf"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// scriptInspectors is the fixed vocabulary exposed to scripts as "inspectors".
var scriptInspectors = map[string]udf.Inspector{
	"boolean": udf.WritableBooleanInspector,
	"byte":    udf.WritableByteInspector,
	"short":   udf.WritableShortInspector,
	"int":     udf.WritableIntInspector,
	"long":    udf.WritableLongInspector,
	"float":   udf.WritableFloatInspector,
	"double":  udf.WritableDoubleInspector,
	"string":  udf.WritableStringInspector,
	"void":    udf.VoidInspector,
}

// InspectorNames returns the members of the "inspectors" struct, sorted.
func InspectorNames() []string {
	names := make([]string, 0, len(scriptInspectors))
	for name := range scriptInspectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupInspector returns the inspector behind inspectors.<name>.
func LookupInspector(name string) (udf.Inspector, bool) {
	i, ok := scriptInspectors[name]
	return i, ok
}

// InspectorsModule returns the "inspectors" struct, e.g. inspectors.string.
func InspectorsModule() starlark.Value {
	members := make(starlark.StringDict, len(scriptInspectors))
	for name, i := range scriptInspectors {
		members[name] = InspectorToStarlark(i)
	}
	return starlarkstruct.FromStringDict(starlark.String("inspectors"), members)
}

// Predeclared returns the globals every function script runs with.
func Predeclared() starlark.StringDict {
	return starlark.StringDict{
		"inspectors": InspectorsModule(),
		"struct":     starlark.NewBuiltin("struct", starlarkstruct.Make),
	}
}

// IsPredeclared reports whether name is reserved by Predeclared.
func IsPredeclared(name string) bool {
	_, ok := Predeclared()[name]
	return ok
}
