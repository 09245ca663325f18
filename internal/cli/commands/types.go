package commands

import (
	"github.com/leapstack-labs/leapudf/internal/cli/output"
	"github.com/leapstack-labs/leapudf/pkg/adapter"
	"github.com/spf13/cobra"
)

// NewTypesCommand creates the types command.
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show how engine types map to foreign inspectors",
		Long: `Print the translation table from engine primitive types to foreign
writable inspectors. Unsupported types fail function validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTypes(NewCommandContext(cmd).Renderer)
		},
	}
}

func runTypes(r *output.Renderer) error {
	var out output.TypesOutput
	for _, m := range adapter.Mappings() {
		info := output.TypeInfo{Type: m.Type.String(), Supported: m.Supported}
		if m.Supported {
			info.Inspector = m.Inspector.String()
		}
		out.Types = append(out.Types, info)
	}

	if handled, err := r.Structured(out); handled {
		return err
	}

	r.Header(1, "Type mappings")
	rows := make([][]string, 0, len(out.Types))
	for _, t := range out.Types {
		inspector := t.Inspector
		if !t.Supported {
			inspector = "unsupported"
		}
		rows = append(rows, []string{t.Type, inspector})
	}
	r.Table([]string{"Engine type", "Inspector"}, rows)
	return nil
}
