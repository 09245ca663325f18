package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leapudf/internal/starlark"
	"github.com/leapstack-labs/leapudf/pkg/adapter"
)

// generateScriptingDocs generates the function scripting reference.
func generateScriptingDocs(outDir string) error {
	log.Printf("Generating scripting docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Function Scripts", "Writing generic functions in Starlark")
	w.GeneratedMarker()

	w.Header(1, "Function Scripts")
	w.Paragraph("Each `.star` file in the scripts directory is a generic function class named after the file. A script must define `initialize(arguments)` and may define `evaluate(*args)` and `display_string(children)`.")

	w.Header(2, "Entry Points")
	w.Table([]string{"Function", "Required", "Description"}, [][]string{
		{InlineCode(starlark.FuncInitialize + "(arguments)"), "Yes", "Receives one inspector per declared parameter and returns the result inspector or its type name. Call `fail()` to reject the arguments"},
		{InlineCode(starlark.FuncEvaluate + "(*args)"), "No", "Computes the result from the argument values"},
		{InlineCode(starlark.FuncDisplayString + "(children)"), "No", "Renders the call for plans and error messages"},
	})

	w.Header(2, "Inspectors")
	w.Paragraph("Inspectors passed to `initialize` have `category`, `primitive_category` and `type_name` fields. The predeclared `inspectors` struct provides:")
	var rows [][]string
	for _, name := range starlark.InspectorNames() {
		i, _ := starlark.LookupInspector(name)
		rows = append(rows, []string{InlineCode("inspectors." + name), InlineCode(i.TypeName())})
	}
	w.Table([]string{"Global", "Type name"}, rows)
	w.Paragraph("`inspectors.void` means the result type is not fixed; it is accepted for any declared return type.")

	w.Header(2, "Engine Type Mappings")
	rows = nil
	for _, m := range adapter.Mappings() {
		inspector := "unsupported"
		if m.Supported {
			inspector = InlineCode(m.Inspector.TypeName())
		}
		rows = append(rows, []string{InlineCode(m.Type.String()), inspector})
	}
	w.Table([]string{"Engine type", "Inspector"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("python", `"""Upper-cases a string."""

def initialize(arguments):
    if len(arguments) != 1:
        fail("shout takes exactly one argument, got %d" % len(arguments))
    if arguments[0].type_name != "string":
        fail("shout takes a string argument, got " + arguments[0].type_name)
    return inspectors.string

def evaluate(value):
    return value.upper()`)

	return os.WriteFile(filepath.Join(outDir, "scripts.md"), w.Bytes(), 0600)
}
