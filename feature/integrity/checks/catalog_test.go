package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"craft-planner/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCatalog(t *testing.T) {
	t.Run("Builtin", func(t *testing.T) {
		loader := catalog.NewLoader(catalog.Config{Source: catalog.SourceBuiltin}, nil, "")

		report, err := CheckCatalog(context.Background(), loader)
		require.NoError(t, err)
		assert.True(t, report.Healthy)
		assert.Equal(t, catalog.SourceBuiltin, report.Source)
		assert.Equal(t, 3, report.Analysis.Recipes)
	})

	t.Run("Unproducible", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loop.yaml")
		doc := `recipes:
  - inputs: [{item: Egg, qty: 1}]
    outputs: [{item: Chicken, qty: 1}]
  - inputs: [{item: Chicken, qty: 1}]
    outputs: [{item: Egg, qty: 2}]
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
		loader := catalog.NewLoader(catalog.Config{Source: catalog.SourceFile, Path: path}, nil, "")

		report, err := CheckCatalog(context.Background(), loader)
		require.NoError(t, err)
		assert.False(t, report.Healthy)
		assert.Equal(t, []string{"Chicken", "Egg"}, report.Analysis.Unproducible)
	})

	t.Run("Load Failure", func(t *testing.T) {
		loader := catalog.NewLoader(catalog.Config{Source: catalog.SourceFile, Path: filepath.Join(t.TempDir(), "none.yaml")}, nil, "")

		_, err := CheckCatalog(context.Background(), loader)
		assert.Error(t, err)
	})
}
