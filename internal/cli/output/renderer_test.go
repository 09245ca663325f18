package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestRenderer(mode OutputMode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"TEXT", ModeText},
		{"markdown", ModeMarkdown},
		{" json ", ModeJSON},
		{"yaml", ModeYAML},
		{"html", ModeAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mode(tt.in), tt.in)
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on terminal", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit json on terminal", ModeJSON, true, ModeJSON},
		{"empty means auto", "", false, ModeMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.isTTY, r.IsTTY())
		})
	}
}

func TestRenderer_Markdown(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown, false)

	r.Header(2, "Functions")
	r.StatusLine("default.f", "error", "return type mismatch")
	r.StatusLine("default.g", "success", "")
	r.Warning("careful")

	got := out.String()
	assert.Contains(t, got, "## Functions\n")
	assert.Contains(t, got, "- **default.f**: error - return type mismatch")
	assert.Contains(t, got, "- **default.g**: success\n")
	assert.Equal(t, "Warning: careful\n", errOut.String())
	assert.NotContains(t, got, "\x1b[")
}

func TestRenderer_Text(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, true)

	r.StatusLine("default.f", "success", "ok")
	r.StatusLine("default.g", "error", "bad")
	r.Success("done")
	r.Error("failed")

	got := out.String()
	assert.Contains(t, got, "✓ default.f")
	assert.Contains(t, got, "✗ default.g")
	assert.Contains(t, got, "✓ done")
	assert.Contains(t, errOut.String(), "✗ failed")
}

func TestRenderer_Table(t *testing.T) {
	text, out, _ := newTestRenderer(ModeText, true)
	text.Table([]string{"Engine", "Foreign"}, [][]string{{"INT", "int"}, {"STRING", "string"}})
	assert.Contains(t, out.String(), "┌")
	assert.Contains(t, out.String(), "STRING")

	md, mdOut, _ := newTestRenderer(ModeMarkdown, false)
	md.Table([]string{"Engine", "Foreign"}, [][]string{{"INT", "int"}})
	assert.Contains(t, mdOut.String(), "| INT | int |")
}

func TestRenderer_Structured(t *testing.T) {
	payload := map[string]any{"name": "f", "ok": true}

	r, out, _ := newTestRenderer(ModeJSON, false)
	handled, err := r.Structured(payload)
	require.NoError(t, err)
	assert.True(t, handled)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "f", decoded["name"])

	r, out, _ = newTestRenderer(ModeYAML, false)
	handled, err = r.Structured(payload)
	require.NoError(t, err)
	assert.True(t, handled)
	decoded = nil
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, true, decoded["ok"])

	r, out, _ = newTestRenderer(ModeMarkdown, false)
	handled, err = r.Structured(payload)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "- **Kind**: generic", FormatKeyValue("Kind", "generic"))
	assert.Equal(t, "```python\nx = 1\n```", FormatCodeBlock("python", "x = 1\n"))
}
