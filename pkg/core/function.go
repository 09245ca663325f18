package core

import (
	"fmt"
	"strings"
	"time"
)

// FunctionKind names the foreign function contract a class implements.
type FunctionKind string

// Known function kinds.
const (
	// KindGeneric classes infer their result type at initialization time.
	KindGeneric FunctionKind = "generic"
	// KindSimple classes publish static per-overload signatures.
	KindSimple FunctionKind = "simple"
)

// Signature is an ordered parameter list plus a return type.
type Signature struct {
	Params []Type
	Return Type
}

// NewSignature builds a Signature, copying params.
func NewSignature(ret Type, params ...Type) Signature {
	p := make([]Type, len(params))
	copy(p, params)
	return Signature{Params: p, Return: ret}
}

// ParamList renders the parameters comma-joined in parentheses, e.g. (INT,STRING).
func (s Signature) ParamList() string {
	return FormatParams(s.Params)
}

// String renders the full signature, e.g. (INT,STRING) RETURNS STRING.
func (s Signature) String() string {
	return s.ParamList() + " RETURNS " + s.Return.String()
}

// Equal reports whether both signatures have identical parameter and return types.
func (s Signature) Equal(o Signature) bool {
	return s.Return == o.Return && SameParams(s.Params, o.Params)
}

// FormatParams renders a parameter list comma-joined in parentheses.
func FormatParams(params []Type) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}
	return "(" + strings.Join(names, ",") + ")"
}

// SameParams reports whether two parameter lists are identical.
func SameParams(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ResourceType classifies a resource a function depends on.
type ResourceType string

// Resource types.
const (
	ResourceFile    ResourceType = "FILE"
	ResourceArchive ResourceType = "ARCHIVE"
	ResourceScript  ResourceType = "SCRIPT"
)

// ResourceURI points at an artifact the function implementation lives in.
type ResourceURI struct {
	Type ResourceType
	URI  string
}

// FunctionReference is the catalog's metadata record for a foreign function.
// The bridge only carries it; it never interprets or persists it.
type FunctionReference struct {
	Database   string
	Name       string
	ClassName  string
	Kind       FunctionKind
	Owner      string
	CreateTime time.Time
	Resources  []ResourceURI
}

// QualifiedName returns database.name, or just name without a database.
func (r *FunctionReference) QualifiedName() string {
	if r == nil {
		return ""
	}
	if r.Database == "" {
		return r.Name
	}
	return fmt.Sprintf("%s.%s", r.Database, r.Name)
}
