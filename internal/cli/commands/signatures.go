package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapudf/internal/cli/output"
	"github.com/leapstack-labs/leapudf/pkg/adapter"
	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/spf13/cobra"
)

// NewSignaturesCommand creates the signatures command.
func NewSignaturesCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "signatures <class>",
		Short: "Show the signatures a class declares statically",
		Long: `Instantiate a class and print the signatures it publishes.

Generic classes resolve their result type when initialized against concrete
arguments, so they declare no static signatures.`,
		Example: `  leapudf signatures builtin.Abs
  leapudf signatures my_script --kind generic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignatures(NewCommandContext(cmd), args[0], kind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Adapter kind (default: the class's own kind)")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return adapter.ListKinds(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runSignatures(c *CommandContext, className, kind string) error {
	set, err := c.LoadClasses()
	if err != nil {
		return err
	}

	k := core.FunctionKind(kind)
	if kind == "" {
		if cls, err := set.Registry.Resolve(className); err == nil && cls.Kind != "" {
			k = cls.Kind
		}
	}

	a, err := adapter.New(k, set.Registry, c.Logger)
	if err != nil {
		return err
	}
	sigs, err := a.ExtractSignatures(className)
	if err != nil {
		return err
	}

	out := output.SignaturesOutput{Class: className, Kind: string(a.Kind()), Signatures: []string{}}
	for _, s := range sigs {
		out.Signatures = append(out.Signatures, s.String())
	}

	r := c.Renderer
	if handled, err := r.Structured(out); handled {
		return err
	}

	r.Header(1, fmt.Sprintf("%s (%s)", className, out.Kind))
	if len(out.Signatures) == 0 {
		r.Muted("No static signatures; the result type is resolved at initialization.")
		return nil
	}
	for _, s := range out.Signatures {
		r.Println("  " + s)
	}
	return nil
}
