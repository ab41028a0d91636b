package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	corecatalog "craft-planner/core/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(source string) *fiber.App {
	app := fiber.New()
	loader := corecatalog.NewLoader(corecatalog.Config{Source: source}, nil, "")
	_ = NewFeature(loader, zap.NewNop()).Load(app)
	return app
}

func get(t *testing.T, app *fiber.App, target string, out any) int {
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleOverview(t *testing.T) {
	app := setupTestApp(corecatalog.SourceBuiltin)

	var body Overview
	status := get(t, app, "/catalog", &body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Log", "Planks", "Stick", "Wooden Pickaxe"}, body.Items)
	assert.Equal(t, []string{"Log"}, body.BaseResources)
	assert.Len(t, body.Recipes, 3)
	assert.Equal(t, corecatalog.Default().Digest(), body.Digest)
}

func TestHandleItem(t *testing.T) {
	app := setupTestApp(corecatalog.SourceBuiltin)

	t.Run("Known", func(t *testing.T) {
		var body ItemInfo
		status := get(t, app, "/catalog/items/Wooden%20Pickaxe", &body)

		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, body.Known)
		assert.False(t, body.Base)
		require.Len(t, body.Producers, 1)
		assert.Equal(t, 2, body.Producers[0].Index)
	})

	t.Run("Base", func(t *testing.T) {
		var body ItemInfo
		status := get(t, app, "/catalog/items/Log", &body)

		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, body.Base)
		assert.Empty(t, body.Producers)
	})

	t.Run("Unknown", func(t *testing.T) {
		var body ItemInfo
		status := get(t, app, "/catalog/items/plank", &body)

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.False(t, body.Known)
		assert.Equal(t, []string{"Planks"}, body.Suggestions)
	})
}

func TestHandleAnalysis(t *testing.T) {
	app := setupTestApp(corecatalog.SourceBuiltin)

	var body corecatalog.Analysis
	status := get(t, app, "/catalog/analysis", &body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 3, body.Recipes)
	assert.Empty(t, body.Unproducible)
}

func TestHandleErrors(t *testing.T) {
	app := setupTestApp("nowhere")

	for _, target := range []string{"/catalog", "/catalog/items/Log", "/catalog/analysis"} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, fiber.StatusInternalServerError, get(t, app, target, nil))
		})
	}
}

func TestHandleReload(t *testing.T) {
	app := setupTestApp(corecatalog.SourceBuiltin)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/reload", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
