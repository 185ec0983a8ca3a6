// Package auth guards API routes with Bearer access tokens.
package auth

import (
	"context"
	"errors"
	"strings"

	"gradevault/core/token"

	"github.com/gofiber/fiber/v2"
)

// LocalsUserID is the fiber locals key holding the verified owner id.
const LocalsUserID = "user_id"

// ErrUnknownUser is returned by a Gate when the token's account no longer
// exists.
var ErrUnknownUser = errors.New("user not found")

// ErrDormant is returned by a Gate when the account has been inactive for
// longer than the dormancy window.
var ErrDormant = errors.New("account dormant")

// Gate checks that the account behind a verified token is still alive.
// Implementations also refresh the account's activity clock.
type Gate interface {
	VerifyActive(ctx context.Context, userID string) error
}

// Config for the auth middleware.
type Config struct {
	Tokens *token.Manager
	Users  Gate
}

// New returns a middleware that validates the Bearer access token, checks
// the account through the Gate, and stores the verified owner id in locals
// for the handlers downstream.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		claims, err := cfg.Tokens.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid token"})
		}

		if cfg.Users != nil {
			switch err := cfg.Users.VerifyActive(c.Context(), claims.UserID()); {
			case errors.Is(err, ErrUnknownUser):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			case errors.Is(err, ErrDormant):
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "token expired for inactivity"})
			case err != nil:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		}

		c.Locals(LocalsUserID, claims.UserID())
		return c.Next()
	}
}

// OwnerID returns the verified owner id stored by the middleware, or an
// empty string when the request never passed through it.
func OwnerID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}
