package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapudf/internal/catalog"
	"github.com/leapstack-labs/leapudf/internal/cli/output"
	"github.com/leapstack-labs/leapudf/pkg/adapter"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Validate the functions declared in a manifest",
		Long: `Load every function declared in the manifest through its adapter and
report whether the foreign implementation accepts the declared signature.

Classes are resolved from the built-in set and the scripts directory.
The command fails when any function fails validation.`,
		Example: `  # Validate ./functions.yaml
  leapudf validate

  # Validate another manifest with a registration timeout
  leapudf validate catalog/udfs.yaml --register-timeout 5s

  # Machine-readable results
  leapudf validate -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			manifest := cmdCtx.Cfg.Manifest
			if len(args) == 1 {
				manifest = args[0]
			}
			return runValidate(cmd, cmdCtx, manifest)
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, c *CommandContext, manifest string) error {
	classes, err := c.LoadClasses()
	if err != nil {
		return err
	}

	defs, err := catalog.LoadManifest(manifest, c.Cfg.Database)
	if err != nil {
		return err
	}

	cat := catalog.New(classes.Registry, catalog.Options{
		Timeout:     c.Cfg.RegisterTimeout,
		Concurrency: c.Cfg.Concurrency,
	}, c.Logger)
	results := cat.RegisterAll(cmd.Context(), defs)

	out := output.ValidateOutput{Manifest: manifest}
	for _, res := range results {
		out.Functions = append(out.Functions, functionStatus(res))
	}
	out.Summary.Total = len(results)
	out.Summary.Failed = len(catalog.Failed(results))
	out.Summary.Passed = out.Summary.Total - out.Summary.Failed

	r := c.Renderer
	if handled, err := r.Structured(out); handled {
		if err != nil {
			return err
		}
	} else {
		renderValidate(r, out)
	}

	if out.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d functions failed validation", out.Summary.Failed, out.Summary.Total)
	}
	return nil
}

func functionStatus(res catalog.Result) output.FunctionStatus {
	def := res.Definition
	st := output.FunctionStatus{
		Name:  def.QualifiedName(),
		Class: def.Class,
		Kind:  string(def.FunctionKind()),
	}
	if sig, err := def.Signature(); err == nil {
		st.Signature = sig.String()
	}
	if res.OK() {
		st.Status = "success"
		st.ID = res.Entry.ID.String()
		return st
	}
	st.Status = "error"
	st.Reason = adapter.Reason(res.Err)
	st.Error = res.Err.Error()
	return st
}

func renderValidate(r *output.Renderer, out output.ValidateOutput) {
	r.Header(1, fmt.Sprintf("Functions (%d total)", out.Summary.Total))
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Manifest", out.Manifest))
		r.Println("")
	}

	for _, f := range out.Functions {
		name := f.Name
		if f.Signature != "" {
			name += " " + f.Signature
		}
		msg := f.Error
		if f.Reason != "" {
			msg = "[" + f.Reason + "] " + msg
		}
		r.StatusLine(name, f.Status, msg)
	}

	r.Println("")
	if out.Summary.Failed == 0 {
		r.Success(fmt.Sprintf("All %d functions validated", out.Summary.Total))
		return
	}
	r.Printf("%d passed, %d failed\n", out.Summary.Passed, out.Summary.Failed)
}
