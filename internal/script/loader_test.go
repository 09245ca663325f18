package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/leapudf/internal/testutil"
	"github.com/leapstack-labs/leapudf/pkg/adapter"
	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T) string
		wantNames []string
		wantErr   string
	}{
		{
			name:     "non-existent directory",
			setupDir: func(_ *testing.T) string { return "/nonexistent/path/to/udfs" },
		},
		{
			name:     "empty directory",
			setupDir: func(t *testing.T) string { return t.TempDir() },
		},
		{
			name: "not a directory",
			setupDir: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "udfs")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
				return path
			},
			wantErr: "not a directory",
		},
		{
			name:      "testdata",
			setupDir:  func(_ *testing.T) string { return "testdata/udfs" },
			wantNames: []string{"coalesce_any", "generic_imports"},
		},
		{
			name: "missing initialize",
			setupDir: func(t *testing.T) string {
				dir := t.TempDir()
				writeScript(t, dir, "noinit.star", "def evaluate(x):\n    return x\n")
				return dir
			},
			wantErr: "missing required function initialize",
		},
		{
			name: "invalid name",
			setupDir: func(t *testing.T) string {
				dir := t.TempDir()
				writeScript(t, dir, "my-func.star", "def initialize(a):\n    return 'int'\n")
				return dir
			},
			wantErr: "invalid character",
		},
		{
			name: "leading digit",
			setupDir: func(t *testing.T) string {
				dir := t.TempDir()
				writeScript(t, dir, "1st.star", "def initialize(a):\n    return 'int'\n")
				return dir
			},
			wantErr: "must start with letter",
		},
		{
			name: "reserved name",
			setupDir: func(t *testing.T) string {
				dir := t.TempDir()
				writeScript(t, dir, "inspectors.star", "def initialize(a):\n    return 'int'\n")
				return dir
			},
			wantErr: "reserved",
		},
		{
			name: "syntax error",
			setupDir: func(t *testing.T) string {
				dir := t.TempDir()
				writeScript(t, dir, "bad.star", "def initialize(:\n")
				return dir
			},
			wantErr: "udfs/bad.star: parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(tt.setupDir(t), testutil.NewTestLogger(t))
			scripts, err := l.Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			names := make([]string, 0, len(scripts))
			for _, s := range scripts {
				names = append(names, s.Name)
			}
			assert.Equal(t, len(tt.wantNames), len(names))
			if len(tt.wantNames) > 0 {
				assert.Equal(t, tt.wantNames, names)
			}
		})
	}
}

func TestLoader_Register(t *testing.T) {
	registry := udf.NewRegistry()
	names, err := NewLoader("testdata/udfs", testutil.NewTestLogger(t)).Register(registry)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"coalesce_any", "generic_imports"}, names)

	class, err := registry.Resolve("generic_imports")
	require.NoError(t, err)
	assert.Equal(t, core.KindGeneric, class.Kind)
	assert.Equal(t, "Returns its single string argument unchanged.", class.Description)

	_, err = NewLoader("testdata/udfs", nil).Register(registry)
	require.Error(t, err, "registering the same scripts twice should fail")
	assert.Contains(t, err.Error(), "already registered")
}

func TestScriptClass_ConstructionExecutesSource(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "explodes.star", "def initialize(a):\n    return 'int'\nx = 1 // 0\n")

	registry := udf.NewRegistry()
	_, err := NewLoader(dir, nil).Register(registry)
	require.NoError(t, err, "static load does not execute the script")

	class, err := registry.Resolve("explodes")
	require.NoError(t, err)
	_, err = class.New()
	require.Error(t, err)
}

// The three reference scenarios, end to end through a script-backed class.
func TestGenericImportsScenarios(t *testing.T) {
	registry := udf.NewRegistry()
	_, err := NewLoader("testdata/udfs", nil).Register(registry)
	require.NoError(t, err)

	a := adapter.NewGenericAdapter(registry, testutil.NewTestLogger(t))

	fn, err := a.LoadGeneric("generic_imports", core.TypeString, []core.Type{core.TypeString})
	require.NoError(t, err)
	assert.True(t, fn.Signature().Equal(core.NewSignature(core.TypeString, core.TypeString)))
	assert.Equal(t, "generic_imports(col)", fn.UDF().DisplayString([]string{"col"}))

	out, err := fn.UDF().Evaluate([]udf.DeferredObject{udf.DeferredValue{Value: "abc"}})
	require.NoError(t, err)
	assert.Equal(t, "abc", out)

	_, err = a.LoadGeneric("generic_imports", core.TypeString, []core.Type{core.TypeInt})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrForeignArgument)
	assert.Contains(t, err.Error(), "(INT)")
	assert.Contains(t, err.Error(), "takes a string argument, got int")

	_, err = a.LoadGeneric("generic_imports", core.TypeInt, []core.Type{core.TypeString})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrReturnTypeMismatch)
	assert.Contains(t, err.Error(), "string")
	assert.Contains(t, err.Error(), "INT")
}

func TestVoidScript_AcceptsAnyReturn(t *testing.T) {
	registry := udf.NewRegistry()
	_, err := NewLoader("testdata/udfs", nil).Register(registry)
	require.NoError(t, err)

	a := adapter.NewGenericAdapter(registry, nil)
	for _, ret := range []core.Type{core.TypeBoolean, core.TypeBigInt, core.TypeString} {
		_, err := a.LoadGeneric("coalesce_any", ret, []core.Type{core.TypeInt, core.TypeInt})
		assert.NoError(t, err, "declared %s", ret)
	}

	_, err = a.LoadGeneric("coalesce_any", core.TypeInt, nil)
	assert.ErrorIs(t, err, adapter.ErrForeignArgument)
}
