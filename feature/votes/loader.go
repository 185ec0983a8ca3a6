package votes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the votes feature. The guard is the auth middleware
// protecting every route in this feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, guard fiber.Handler) *Feature {
	store := NewStore(db)
	h := NewHandler(store, logger, guard)
	return &Feature{store: store, handler: h}
}

// Store exposes the vote store so other features (backup, auth account
// deletion) can share the same persistence.
func (f *Feature) Store() *Store {
	return f.store
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "votes"
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
