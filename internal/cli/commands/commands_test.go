package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	_ "github.com/leapstack-labs/leapudf/internal/builtin"
	"github.com/leapstack-labs/leapudf/internal/cli/output"
	"github.com/leapstack-labs/leapudf/internal/cli/testutil"
	"github.com/leapstack-labs/leapudf/internal/config"
	intutil "github.com/leapstack-labs/leapudf/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes cmd with a config rooted at projectDir.
func runCommand(t *testing.T, cmd *cobra.Command, projectDir, format string, args ...string) (string, string, error) {
	t.Helper()

	cfg := config.Default()
	cfg.ScriptsDir = filepath.Join(projectDir, config.DefaultScriptsDir)
	cfg.Manifest = filepath.Join(projectDir, config.DefaultManifest)
	cfg.OutputFormat = format

	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, intutil.NewTestLogger(t))

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestValidateCommand_Markdown(t *testing.T) {
	dir := testutil.SetupTestProject(t, nil)

	out, _, err := runCommand(t, NewValidateCommand(), dir, "markdown")
	require.Error(t, err)
	assert.Equal(t, "1 of 3 functions failed validation", err.Error())

	testutil.AssertValidMarkdown(t, out)
	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "# Functions (3 total)")
	assert.Contains(t, out, "- **analytics.shout (STRING) RETURNS STRING**: success")
	assert.Contains(t, out, "- **analytics.upper (STRING) RETURNS STRING**: success")
	assert.Contains(t, out, "- **analytics.shout_int (STRING) RETURNS INT**: error - [return_type_mismatch]")
	assert.Contains(t, out, "2 passed, 1 failed")
}

func TestValidateCommand_JSON(t *testing.T) {
	dir := testutil.SetupTestProject(t, map[string]string{
		"ok.yaml": "functions:\n  - name: shout\n    class: shout\n    returns: string\n    args: [string]\n",
	})

	out, _, err := runCommand(t, NewValidateCommand(), dir, "json", filepath.Join(dir, "ok.yaml"))
	require.NoError(t, err)

	var result output.ValidateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, output.ValidateSummary{Total: 1, Passed: 1}, result.Summary)
	require.Len(t, result.Functions, 1)
	assert.Equal(t, "default.shout", result.Functions[0].Name)
	assert.Equal(t, "success", result.Functions[0].Status)
	assert.NotEmpty(t, result.Functions[0].ID)
}

func TestValidateCommand_Reasons(t *testing.T) {
	manifest := `functions:
  - name: missing
    class: nowhere.Missing
    returns: string
  - name: rejected
    class: shout
    returns: string
    args: [int]
  - name: unsupported
    class: shout
    returns: string
    args: [date]
`
	dir := testutil.SetupTestProject(t, map[string]string{"functions.yaml": manifest})

	out, _, err := runCommand(t, NewValidateCommand(), dir, "json")
	require.Error(t, err)

	var result output.ValidateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	reasons := make(map[string]string)
	for _, f := range result.Functions {
		reasons[f.Name] = f.Reason
	}
	assert.Equal(t, map[string]string{
		"default.missing":     "class_resolution",
		"default.rejected":    "foreign_argument",
		"default.unsupported": "unsupported_type",
	}, reasons)
	assert.Contains(t, out, "shout takes a string argument, got int")
}

func TestValidateCommand_MissingManifest(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCommand(t, NewValidateCommand(), dir, "markdown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading manifest")
}

func TestValidateCommand_BrokenScript(t *testing.T) {
	dir := testutil.SetupTestProject(t, map[string]string{
		filepath.Join("udfs", "broken.star"): "def evaluate(x):\n    return x\n",
	})
	_, _, err := runCommand(t, NewValidateCommand(), dir, "markdown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required function initialize")
}

func TestClassesCommand(t *testing.T) {
	dir := testutil.SetupTestProject(t, nil)

	out, _, err := runCommand(t, NewClassesCommand(), dir, "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: shout")
	assert.Contains(t, out, "source: script")
	assert.Contains(t, out, "description: Upper-cases a string.")
	assert.Contains(t, out, "name: builtin.Upper")
	assert.Contains(t, out, "source: builtin")

	out, _, err = runCommand(t, NewClassesCommand(), dir, "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| shout | generic | script | Upper-cases a string. |")
}

func TestSignaturesCommand(t *testing.T) {
	dir := testutil.SetupTestProject(t, nil)

	out, _, err := runCommand(t, NewSignaturesCommand(), dir, "json", "builtin.Abs")
	require.NoError(t, err)
	var sigs output.SignaturesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &sigs))
	assert.Equal(t, "simple", sigs.Kind)
	assert.Contains(t, sigs.Signatures, "(INT) RETURNS INT")
	assert.Contains(t, sigs.Signatures, "(DOUBLE) RETURNS DOUBLE")

	out, _, err = runCommand(t, NewSignaturesCommand(), dir, "markdown", "shout")
	require.NoError(t, err)
	assert.Contains(t, out, "# shout (generic)")
	assert.Contains(t, out, "No static signatures")

	_, _, err = runCommand(t, NewSignaturesCommand(), dir, "markdown", "shout", "--kind", "aggregate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown function kind "aggregate"`)

	_, _, err = runCommand(t, NewSignaturesCommand(), dir, "markdown", "shout", "--kind", "simple")
	require.Error(t, err, "a generic script is not a simple function")
}

func TestTypesCommand(t *testing.T) {
	tests := []struct {
		name     string
		renderer *testutil.TestRenderer
		mode     output.OutputMode
		want     []string
	}{
		{"markdown", testutil.NewTestRendererMarkdown(), output.ModeMarkdown, []string{"# Type mappings", "| STRING | string |", "| DATE | unsupported |"}},
		{"text", testutil.NewTestRendererText(), output.ModeText, []string{"STRING", "┌"}},
		{"json", testutil.NewTestRendererJSON(), output.ModeJSON, []string{`"type": "INT"`, `"inspector": "int"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, runTypes(tt.renderer.Renderer))
			for _, want := range tt.want {
				testutil.AssertContains(t, tt.renderer.Output(), want)
			}
			testutil.AssertOutputMode(t, tt.renderer, tt.mode)
		})
	}
}
