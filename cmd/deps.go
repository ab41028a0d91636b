package cmd

import (
	"context"
	"fmt"

	"craft-planner/core/catalog"
	"craft-planner/core/config"
	"craft-planner/core/logger"
	"craft-planner/core/storage"

	"go.uber.org/zap"
)

// deps is what every command needs: configuration, a logger and the catalog.
type deps struct {
	cfg     *config.Config
	logg    *zap.Logger
	client  storage.Client
	loader  *catalog.Loader
	catalog *catalog.Catalog
}

// setup loads the configuration and the configured catalog.
func setup(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Minio connects lazily, so the client costs nothing unless a command uses it.
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	loader := catalog.NewLoader(cfg.Catalog, client, cfg.Storage.Bucket)
	c, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logg.Debug("Catalog loaded",
		zap.String("source", loader.Key()),
		zap.Int("recipes", c.Len()),
		zap.String("digest", c.Digest()))

	return &deps{cfg: cfg, logg: logg, client: client, loader: loader, catalog: c}, nil
}
