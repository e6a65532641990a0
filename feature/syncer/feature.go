package syncer

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the sync feature.
func NewFeature(service *Service, log *zap.Logger) *Feature {
	return &Feature{
		service: service,
		handler: NewHandler(service, log),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "syncer"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the underlying sync service, for the scheduler.
func (f *Feature) Service() *Service {
	return f.service
}
