package session

import (
	coresession "craft-planner/core/session"
	"craft-planner/feature/calculator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new session feature. A nil store disables the feature.
func NewFeature(store coresession.Store, snapshots *coresession.Snapshots, calc *calculator.Service, logger *zap.Logger) *Feature {
	f := &Feature{}
	if store != nil {
		f.service = NewService(store, snapshots, calc, logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "session"
}

// IsEnabled returns true if a session store is configured.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
