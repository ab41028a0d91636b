package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"craft-planner/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema/catalog.schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Format is the encoding of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the document format from a file or object name.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is the on-disk shape of a catalog.
type Document struct {
	Recipes []Recipe `json:"recipes" yaml:"recipes"`
}

// Schema returns the compiled catalog JSON Schema.
func Schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("catalog.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// Parse validates raw against the catalog schema and builds a Catalog from it.
// YAML documents are normalised to JSON first so both formats share one validation path.
func Parse(raw []byte, format Format) (*Catalog, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		raw = converted
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	s, err := Schema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return New(d.Recipes)
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if v == nil {
		v = map[string]any{}
	}
	return json.Marshal(v)
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(raw, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// LoadObject reads a catalog document from object storage.
func LoadObject(ctx context.Context, client storage.Client, bucket, object string) (*Catalog, error) {
	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object %s: %w", object, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object %s: %w", object, err)
	}

	c, err := Parse(raw, FormatFor(object))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", object, err)
	}
	return c, nil
}

// Encode renders the catalog as a document in the given format.
func Encode(c *Catalog, format Format) ([]byte, error) {
	doc := Document{Recipes: c.Recipes()}
	if format == FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return json.MarshalIndent(doc, "", "  ")
}

// StoreObject encodes c in the format matching object and uploads it.
func StoreObject(ctx context.Context, client storage.Client, bucket, object string, c *Catalog) error {
	format := FormatFor(object)
	raw, err := Encode(c, format)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	contentType := "application/json"
	if format == FormatYAML {
		contentType = "application/yaml"
	}
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload catalog object %s: %w", object, err)
	}
	return nil
}
