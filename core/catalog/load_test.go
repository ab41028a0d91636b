package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"craft-planner/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "recipes": [
    {"id": "planks", "inputs": [{"item": "Log", "qty": 1}], "outputs": [{"item": "Planks", "qty": 4}]},
    {"id": "sticks", "inputs": [{"item": "Planks", "qty": 2}], "outputs": [{"item": "Stick", "qty": 4}]}
  ]
}`

const sampleYAML = `
recipes:
  - id: planks
    inputs:
      - {item: Log, qty: 1}
    outputs:
      - {item: Planks, qty: 4}
  - id: sticks
    inputs:
      - {item: Planks, qty: 2}
    outputs:
      - {item: Stick, qty: 4}
`

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("recipes.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("catalog/Recipes.YML"))
	assert.Equal(t, FormatJSON, FormatFor("recipes.json"))
	assert.Equal(t, FormatJSON, FormatFor("recipes"))
}

func TestParse(t *testing.T) {
	fromJSON, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	fromYAML, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Recipes(), fromYAML.Recipes())
	assert.Equal(t, fromJSON.Digest(), fromYAML.Digest())
	assert.Equal(t, "sticks", fromJSON.Recipe(1).ID)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"recipes": [`},
		{"missing recipes", `{}`},
		{"missing outputs", `{"recipes": [{"inputs": []}]}`},
		{"empty outputs", `{"recipes": [{"outputs": []}]}`},
		{"unknown field", `{"recipes": [{"outputs": [{"item": "A", "qty": 1}], "time": 3}]}`},
		{"string qty", `{"recipes": [{"outputs": [{"item": "A", "qty": "1"}]}]}`},
		{"empty item", `{"recipes": [{"outputs": [{"item": "", "qty": 1}]}]}`},
		{"zero output", `{"recipes": [{"outputs": [{"item": "A", "qty": 0}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatJSON)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}

	_, err := Parse([]byte("recipes: [\n"), FormatYAML)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))

	infinite := "recipes:\n  - inputs: [{item: Log, qty: 1}]\n    outputs: [{item: Planks, qty: .inf}]\n"
	_, err = Parse([]byte(infinite), FormatYAML)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadObject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "catalog/recipes.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(sampleJSON)), nil)

		c, err := LoadObject(context.Background(), mockClient, "bucket", "catalog/recipes.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"Log", "Planks", "Stick"}, c.AllItems())
	})

	t.Run("GetObject fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "catalog/recipes.json", mock.Anything).
			Return(nil, assert.AnError)

		_, err := LoadObject(context.Background(), mockClient, "bucket", "catalog/recipes.json")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			raw, err := Encode(Default(), format)
			require.NoError(t, err)

			c, err := Parse(raw, format)
			require.NoError(t, err)
			assert.Equal(t, Default().Digest(), c.Digest())
		})
	}
}

func TestStoreObject(t *testing.T) {
	mockClient := new(mocks.Client)
	var uploaded []byte
	mockClient.On("PutObject", mock.Anything, "bucket", "catalog/recipes.yaml", mock.Anything, mock.Anything,
		minio.PutObjectOptions{ContentType: "application/yaml"}).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil).Once()
	mockClient.On("PutObject", mock.Anything, "bucket", "catalog/broken.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError).Once()

	require.NoError(t, StoreObject(context.Background(), mockClient, "bucket", "catalog/recipes.yaml", Default()))
	c, err := Parse(uploaded, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default().Digest(), c.Digest())

	err = StoreObject(context.Background(), mockClient, "bucket", "catalog/broken.json", Default())
	assert.ErrorIs(t, err, assert.AnError)
}
