package backup

import (
	"gradevault/feature/votes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the backup feature. archiver may be nil, disabling
// the pre-restore archive; the guard is the auth middleware protecting
// every route in this feature.
func NewFeature(store *votes.Store, archiver *Archiver, logger *zap.Logger, guard fiber.Handler) *Feature {
	svc := NewService(store, archiver, logger)
	h := NewHandler(svc, logger, guard)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "backup"
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
