package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapudf/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewClassesCommand creates the classes command.
func NewClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List loadable function classes",
		Long: `List every class a manifest can reference: the built-in classes and
one class per script in the scripts directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClasses(NewCommandContext(cmd))
		},
	}
}

func runClasses(c *CommandContext) error {
	set, err := c.LoadClasses()
	if err != nil {
		return err
	}

	var out output.ClassesOutput
	for _, cls := range set.Registry.Classes() {
		out.Classes = append(out.Classes, output.ClassInfo{
			Name:        cls.Name,
			Kind:        string(cls.Kind),
			Source:      set.Source(cls.Name),
			Description: cls.Description,
		})
	}

	r := c.Renderer
	if handled, err := r.Structured(out); handled {
		return err
	}

	r.Header(1, fmt.Sprintf("Classes (%d total)", len(out.Classes)))
	rows := make([][]string, 0, len(out.Classes))
	for _, cls := range out.Classes {
		rows = append(rows, []string{cls.Name, cls.Kind, cls.Source, firstLine(cls.Description)})
	}
	r.Table([]string{"Class", "Kind", "Source", "Description"}, rows)
	return nil
}

func firstLine(s string) string {
	for i, ch := range s {
		if ch == '\n' {
			return s[:i]
		}
	}
	return s
}
