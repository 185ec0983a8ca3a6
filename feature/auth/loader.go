package auth

import (
	"gradevault/core/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the auth feature. The store is built by the caller
// because the request guard needs it as its Gate before any feature is
// assembled. The guard protects the account-deletion route only; the
// purger removes an owner's grade records when the account goes away.
func NewFeature(store *Store, tokens *token.Manager, purger RecordPurger, secureCookies bool, logger *zap.Logger, guard fiber.Handler) *Feature {
	service := NewService(store, tokens, purger, logger)
	h := NewHandler(service, logger, guard, tokens.RefreshTTL(), secureCookies)
	return &Feature{handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "auth"
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
