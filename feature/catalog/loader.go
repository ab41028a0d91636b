package catalog

import (
	corecatalog "craft-planner/core/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new catalog feature.
func NewFeature(loader *corecatalog.Loader, logger *zap.Logger) *Feature {
	service := NewService(loader, logger)
	return &Feature{
		service: service,
		handler: NewHandler(service),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "catalog"
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
