package catalog

import (
	"context"

	corecatalog "craft-planner/core/catalog"
	"craft-planner/core/request"

	"go.uber.org/zap"
)

// Overview describes the whole catalog.
type Overview struct {
	Digest        string               `json:"digest"`
	Items         []string             `json:"items"`
	BaseResources []string             `json:"base_resources"`
	Recipes       []corecatalog.Recipe `json:"recipes"`
}

// ItemInfo describes one item. Known is false for names outside the catalog, in which case
// Suggestions lists the closest known names.
type ItemInfo struct {
	Name        string                `json:"name"`
	Known       bool                  `json:"known"`
	Base        bool                  `json:"base"`
	Producers   []corecatalog.Indexed `json:"producers"`
	Suggestions []string              `json:"suggestions,omitempty"`
}

// Service answers catalog queries.
type Service struct {
	loader *corecatalog.Loader
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(loader *corecatalog.Loader, logger *zap.Logger) *Service {
	return &Service{loader: loader, logger: logger}
}

// Overview returns the full catalog.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	c, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Digest:        c.Digest(),
		Items:         c.AllItems(),
		BaseResources: c.BaseResources(),
		Recipes:       c.Recipes(),
	}, nil
}

// Item looks up one item by exact name.
func (s *Service) Item(ctx context.Context, name string) (*ItemInfo, error) {
	c, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	info := &ItemInfo{Name: name, Producers: []corecatalog.Indexed{}}
	if !c.Has(name) {
		info.Suggestions = request.Suggest(name, c.AllItems())
		return info, nil
	}
	info.Known = true
	info.Base = c.IsBase(name)
	info.Producers = append(info.Producers, c.RecipesProducing(name)...)
	return info, nil
}

// Analyze runs the reachability analysis.
func (s *Service) Analyze(ctx context.Context) (*corecatalog.Analysis, error) {
	c, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	a := corecatalog.Analyze(c)
	return &a, nil
}

// Reload drops the cached catalog.
func (s *Service) Reload() {
	s.loader.Reload()
	s.logger.Info("Catalog cache invalidated", zap.String("source", s.loader.Key()))
}
