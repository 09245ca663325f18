package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/leapudf/internal/testutil"
	"github.com/leapstack-labs/leapudf/pkg/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAll(t *testing.T) {
	c := New(newFixtures().loader, Options{Concurrency: 4}, testutil.NewTestLogger(t))

	defs := []Definition{
		stringDef("one"),
		{Database: "default", Name: "bad", Class: "test.StringIdentity", Returns: "int", Args: []string{"string"}},
		stringDef("two"),
		{Database: "default", Name: "missing", Class: "test.Missing", Returns: "int"},
		stringDef("three"),
	}

	results := c.RegisterAll(context.Background(), defs)
	require.Len(t, results, len(defs))

	for i, r := range results {
		assert.Equal(t, defs[i].Name, r.Definition.Name, "results keep input order")
	}
	assert.True(t, results[0].OK())
	assert.ErrorIs(t, results[1].Err, adapter.ErrReturnTypeMismatch)
	assert.True(t, results[2].OK())
	assert.ErrorIs(t, results[3].Err, adapter.ErrClassResolution)
	assert.True(t, results[4].OK(), "failures do not cancel later registrations")

	failed := Failed(results)
	assert.Len(t, failed, 2)
	assert.Equal(t, 3, c.Len())
}

func TestRegisterAll_Manifest(t *testing.T) {
	defs, err := LoadManifest(filepath.Join("testdata", "functions.yaml"), "default")
	require.NoError(t, err)

	c := New(newFixtures().loader, Options{Concurrency: 2}, nil)
	results := c.RegisterAll(context.Background(), defs)

	assert.Empty(t, Failed(results))
	assert.Equal(t, 3, c.Len())

	_, err = c.Lookup("core", "abs", results[2].Entry.Signature().Params)
	assert.NoError(t, err)
}

func TestRegisterAll_Empty(t *testing.T) {
	c := New(newFixtures().loader, Options{}, nil)
	assert.Empty(t, c.RegisterAll(context.Background(), nil))
}

func TestRegisterAll_Canceled(t *testing.T) {
	c := New(newFixtures().loader, Options{Concurrency: 2}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := c.RegisterAll(ctx, []Definition{stringDef("a"), stringDef("b")})
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
	assert.Zero(t, c.Len())
}
