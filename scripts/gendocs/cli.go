package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapudf/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs writes index.md plus one page per leapudf command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	keys := configKeysByFlag()

	if err := writePage(outDir, "index.md", cliIndex(root, keys)); err != nil {
		return err
	}
	for _, cmd := range documentedCommands(root) {
		if err := writePage(outDir, cmd.Name()+".md", commandPage(cmd, keys)); err != nil {
			return fmt.Errorf("command %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

func writePage(outDir, name string, w *MarkdownWriter) error {
	if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	log.Printf("  Generated %s", name)
	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.IsAvailableCommand() {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// configKeysByFlag maps a flag name to the config key it overrides.
func configKeysByFlag() map[string]string {
	keys := make(map[string]string)
	for _, f := range getConfigSchema() {
		keys[strings.ReplaceAll(f.Name, "_", "-")] = f.Name
	}
	return keys
}

func cliIndex(root *cobra.Command, keys map[string]string) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for leapudf")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("leapudf validates foreign function implementations against the signatures declared in a function manifest, and inspects the classes and type mappings available to it.")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/leapudf/cmd/leapudf@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Paragraph("Every flag that has a config key overrides `leapudf.yaml` and its `LEAPUDF_` environment variable.")
	flagsTable(w, root.PersistentFlags(), keys)

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Success"},
		{InlineCode("1"), "Error, or at least one function failed validation"},
	})
	return w
}

func commandPage(cmd *cobra.Command, keys map[string]string) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	w.Paragraph(desc)

	w.Header(2, "Usage")
	w.CodeBlock("bash", "leapudf "+cmd.Use)

	if args := useArguments(cmd.Use); len(args) > 0 {
		w.Header(2, "Arguments")
		w.Table([]string{"Argument", "Required"}, args)
	}

	if cmd.LocalNonPersistentFlags().HasFlags() {
		w.Header(2, "Options")
		flagsTable(w, cmd.LocalNonPersistentFlags(), keys)
	}
	w.Paragraph("Global options are listed in the [CLI reference](/cli#global-options).")

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w
}

// useArguments lists the positional arguments of a use line: <x> is required,
// [x] is optional and a|b alternatives are kept as written.
func useArguments(use string) [][]string {
	fields := strings.Fields(use)
	if len(fields) < 2 {
		return nil
	}
	var rows [][]string
	for _, arg := range fields[1:] {
		switch {
		case strings.HasPrefix(arg, "<"):
			rows = append(rows, []string{InlineCode(strings.Trim(arg, "<>")), "yes"})
		case strings.HasPrefix(arg, "["):
			rows = append(rows, []string{InlineCode(strings.Trim(arg, "[]")), "no"})
		}
	}
	return rows
}

func flagsTable(w *MarkdownWriter, flags *pflag.FlagSet, keys map[string]string) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		def := f.DefValue
		if def != "" {
			def = InlineCode(def)
		}
		key := ""
		if k, ok := keys[f.Name]; ok {
			key = InlineCode(k)
		}
		rows = append(rows, []string{InlineCode(name), f.Value.Type(), def, key, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Type", "Default", "Config key", "Description"}, rows)
}

// dedent strips the indentation shared by every non-blank line.
func dedent(text string) string {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := len(line) - len(strings.TrimLeft(line, " \t")); indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
