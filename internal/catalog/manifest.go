package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/leapudf/pkg/core"
)

// Definition is one function declaration from a manifest: the equivalent of
// a CREATE FUNCTION statement.
type Definition struct {
	Database  string        `koanf:"database" json:"database,omitempty" yaml:"database,omitempty"`
	Name      string        `koanf:"name" json:"name" yaml:"name"`
	Class     string        `koanf:"class" json:"class" yaml:"class"`
	Kind      string        `koanf:"kind" json:"kind,omitempty" yaml:"kind,omitempty"`
	Returns   string        `koanf:"returns" json:"returns" yaml:"returns"`
	Args      []string      `koanf:"args" json:"args" yaml:"args"`
	Owner     string        `koanf:"owner" json:"owner,omitempty" yaml:"owner,omitempty"`
	Resources []ResourceDef `koanf:"resources" json:"resources,omitempty" yaml:"resources,omitempty"`
}

// ResourceDef is an artifact a function depends on.
type ResourceDef struct {
	Type string `koanf:"type" json:"type" yaml:"type"`
	URI  string `koanf:"uri" json:"uri" yaml:"uri"`
}

// Manifest is the on-disk list of function definitions.
type Manifest struct {
	Database  string       `koanf:"database"`
	Functions []Definition `koanf:"functions"`
}

// LoadManifest reads a YAML manifest. Definitions without a database inherit
// the manifest's database, then defaultDB.
func LoadManifest(path, defaultDB string) ([]Definition, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("unable to decode manifest %s: %w", path, err)
	}

	db := m.Database
	if db == "" {
		db = defaultDB
	}
	for i := range m.Functions {
		if m.Functions[i].Database == "" {
			m.Functions[i].Database = db
		}
	}
	return m.Functions, nil
}

// QualifiedName returns database.name.
func (d Definition) QualifiedName() string {
	if d.Database == "" {
		return d.Name
	}
	return d.Database + "." + d.Name
}

// FunctionKind returns the declared kind, defaulting to generic.
func (d Definition) FunctionKind() core.FunctionKind {
	if d.Kind == "" {
		return core.KindGeneric
	}
	return core.FunctionKind(strings.ToLower(d.Kind))
}

// Validate checks required fields.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("function name is required")
	}
	if strings.TrimSpace(d.Class) == "" {
		return fmt.Errorf("function %s: class is required", d.Name)
	}
	if strings.TrimSpace(d.Returns) == "" {
		return fmt.Errorf("function %s: returns is required", d.Name)
	}
	for _, r := range d.Resources {
		switch core.ResourceType(strings.ToUpper(r.Type)) {
		case core.ResourceFile, core.ResourceArchive, core.ResourceScript:
		default:
			return fmt.Errorf("function %s: unknown resource type %q", d.Name, r.Type)
		}
	}
	return nil
}

// Signature parses the declared return and argument types.
func (d Definition) Signature() (core.Signature, error) {
	ret, err := core.ParseType(d.Returns)
	if err != nil {
		return core.Signature{}, fmt.Errorf("function %s: return type: %w", d.Name, err)
	}
	params, err := core.ParseTypes(d.Args)
	if err != nil {
		return core.Signature{}, fmt.Errorf("function %s: %w", d.Name, err)
	}
	return core.NewSignature(ret, params...), nil
}

// Reference builds the metadata record attached to the loaded function.
func (d Definition) Reference(created time.Time) *core.FunctionReference {
	ref := &core.FunctionReference{
		Database:   d.Database,
		Name:       d.Name,
		ClassName:  d.Class,
		Kind:       d.FunctionKind(),
		Owner:      d.Owner,
		CreateTime: created,
	}
	for _, r := range d.Resources {
		ref.Resources = append(ref.Resources, core.ResourceURI{
			Type: core.ResourceType(strings.ToUpper(r.Type)),
			URI:  r.URI,
		})
	}
	return ref
}
