package integrity

import (
	"craft-planner/core/catalog"
	"craft-planner/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new integrity feature.
func NewFeature(client storage.Client, storageCfg storage.Config, loader *catalog.Loader, catalogCfg catalog.Config, db *gorm.DB, logger *zap.Logger) *Feature {
	service := NewService(client, storageCfg, loader, catalogCfg, db, logger)
	return &Feature{
		service: service,
		handler: NewHandler(service),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "integrity"
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
