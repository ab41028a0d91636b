package calculator

import (
	"craft-planner/core/catalog"
	"craft-planner/core/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new calculator feature.
func NewFeature(loader *catalog.Loader, cfg resolver.Config, logger *zap.Logger) *Feature {
	service := NewService(loader, cfg, logger)
	return &Feature{
		service: service,
		handler: NewHandler(service),
	}
}

// Service returns the feature's service, shared with the session feature.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "calculator"
}

// IsEnabled returns true if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
