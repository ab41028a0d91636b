package catalog

import (
	"context"
	"fmt"
	"time"

	"craft-planner/core/storage"
)

// Loader resolves the configured catalog source, through a Cache.
type Loader struct {
	cfg    Config
	client storage.Client
	bucket string
	cache  *Cache
}

// NewLoader creates a loader. client may be nil unless the storage source is configured.
func NewLoader(cfg Config, client storage.Client, bucket string) *Loader {
	return &Loader{
		cfg:    cfg,
		client: client,
		bucket: bucket,
		cache:  NewCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}
}

// Key identifies the configured source in the cache.
func (l *Loader) Key() string {
	switch l.cfg.Source {
	case SourceFile:
		return SourceFile + "|" + l.cfg.Path
	case SourceStorage:
		return SourceStorage + "|" + l.bucket + "|" + l.cfg.Object
	default:
		return SourceBuiltin
	}
}

// Load returns the configured catalog, reusing a cached copy while it is fresh.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	if err := l.cfg.Validate(); err != nil {
		return nil, err
	}
	return l.cache.GetOrLoad(ctx, l.Key(), l.load)
}

// Reload forces the next Load to read the source again.
func (l *Loader) Reload() {
	l.cache.Invalidate(l.Key())
}

func (l *Loader) load(ctx context.Context) (*Catalog, error) {
	switch l.cfg.Source {
	case SourceFile:
		return LoadFile(l.cfg.Path)
	case SourceStorage:
		if l.client == nil {
			return nil, fmt.Errorf("catalog source %s requires a storage client", SourceStorage)
		}
		return LoadObject(ctx, l.client, l.bucket, l.cfg.Object)
	default:
		return Default(), nil
	}
}
