package catalog

import "fmt"

// Source names where the catalog is read from.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceStorage = "storage"
)

// Config holds configuration for catalog loading.
type Config struct {
	// Source is one of builtin, file or storage.
	Source string `mapstructure:"source" default:"builtin"`
	// Path is the catalog document on disk, used by the file source.
	Path string `mapstructure:"path" default:"recipes.yaml"`
	// Object is the catalog object key in the storage bucket, used by the storage source.
	Object string `mapstructure:"object" default:"catalog/recipes.json"`
	// CacheTTLSeconds is how long a loaded catalog is reused. Zero reloads on every call.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// Validate checks that Source names a known source.
func (c Config) Validate() error {
	switch c.Source {
	case SourceBuiltin, SourceFile, SourceStorage:
		return nil
	default:
		return fmt.Errorf("unknown catalog source: %s", c.Source)
	}
}
