package checks

import (
	"context"
	"fmt"

	"craft-planner/core/catalog"
)

// CatalogReport is the result of a catalog integrity check.
type CatalogReport struct {
	Source   string           `json:"source"`
	Digest   string           `json:"digest"`
	Healthy  bool             `json:"healthy"`
	Analysis catalog.Analysis `json:"analysis"`
}

// CheckCatalog loads the configured catalog and analyzes it. Loading failures, schema
// violations included, are returned as errors.
func CheckCatalog(ctx context.Context, loader *catalog.Loader) (*CatalogReport, error) {
	c, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	a := catalog.Analyze(c)
	return &CatalogReport{
		Source:   loader.Key(),
		Digest:   c.Digest(),
		Healthy:  a.Healthy(),
		Analysis: a,
	}, nil
}
