package script

import (
	"path/filepath"
	"strings"

	"go.starlark.net/syntax"
)

// ParsedFunction is a top-level def found in a function script.
type ParsedFunction struct {
	Name      string   `json:"name"`
	Args      []string `json:"args"` // with defaults, e.g. "sep=None"
	Docstring string   `json:"docstring"`
	Line      int      `json:"line"`
}

// Signature returns a human-readable signature, e.g. initialize(arguments).
func (f *ParsedFunction) Signature() string {
	return f.Name + "(" + strings.Join(f.Args, ", ") + ")"
}

// ParsedScript is the static view of a .star file: nothing is executed.
type ParsedScript struct {
	Name      string            `json:"name"`
	Path      string            `json:"path"`
	Docstring string            `json:"docstring"`
	Functions []*ParsedFunction `json:"functions"`
}

// Function returns the top-level def called name, or nil.
func (p *ParsedScript) Function(name string) *ParsedFunction {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// ParseFile statically parses a function script and extracts its module
// docstring and public top-level functions.
func ParseFile(filename string, content []byte) (*ParsedScript, error) {
	f, err := syntax.Parse(filename, content, 0) //nolint:staticcheck // SA1019: will migrate to FileOptions.Parse later
	if err != nil {
		return nil, &ParseError{File: filename, Message: err.Error()}
	}

	ps := &ParsedScript{
		Name:      strings.TrimSuffix(filepath.Base(filename), ".star"),
		Path:      filename,
		Docstring: extractDocstring(f.Stmts),
	}

	for _, stmt := range f.Stmts {
		def, ok := stmt.(*syntax.DefStmt)
		if !ok || strings.HasPrefix(def.Name.Name, "_") {
			continue
		}
		ps.Functions = append(ps.Functions, &ParsedFunction{
			Name:      def.Name.Name,
			Args:      extractArgs(def.Params),
			Docstring: extractDocstring(def.Body),
			Line:      int(def.Name.NamePos.Line),
		})
	}
	return ps, nil
}

func extractArgs(params []syntax.Expr) []string {
	var args []string
	for _, param := range params {
		switch p := param.(type) {
		case *syntax.Ident:
			args = append(args, p.Name)
		case *syntax.BinaryExpr:
			if ident, ok := p.X.(*syntax.Ident); ok && p.Op == syntax.EQ {
				args = append(args, ident.Name+"="+exprToString(p.Y))
			}
		case *syntax.UnaryExpr:
			ident, ok := p.X.(*syntax.Ident)
			if !ok {
				continue
			}
			switch p.Op {
			case syntax.STAR:
				args = append(args, "*"+ident.Name)
			case syntax.STARSTAR:
				args = append(args, "**"+ident.Name)
			}
		}
	}
	return args
}

// extractDocstring returns the leading string literal of a statement list.
func extractDocstring(body []syntax.Stmt) string {
	if len(body) == 0 {
		return ""
	}
	exprStmt, ok := body[0].(*syntax.ExprStmt)
	if !ok {
		return ""
	}
	lit, ok := exprStmt.X.(*syntax.Literal)
	if !ok || lit.Token != syntax.STRING {
		return ""
	}
	s, _ := lit.Value.(string)
	return strings.TrimSpace(s)
}

func exprToString(expr syntax.Expr) string {
	switch e := expr.(type) {
	case *syntax.Literal:
		return e.Raw
	case *syntax.Ident:
		return e.Name
	case *syntax.ListExpr:
		return "[]"
	case *syntax.DictExpr:
		return "{}"
	case *syntax.TupleExpr:
		return "()"
	case *syntax.UnaryExpr:
		if e.Op == syntax.MINUS {
			return "-" + exprToString(e.X)
		}
		return exprToString(e.X)
	default:
		return "..."
	}
}

// ParseError represents an error during static parsing.
type ParseError struct {
	File    string
	Message string
}

func (e *ParseError) Error() string {
	return "parse " + filepath.Base(e.File) + ": " + e.Message
}
