package populate

import (
	"holiday-manager/core/holiday"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Populate feature.
func NewFeature(source holiday.Lister, directory Directory, calendar Calendar, tracker Tracker, logger *zap.Logger, workers int) *Feature {
	svc := NewService(source, directory, calendar, tracker, logger, workers)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "populate"
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
