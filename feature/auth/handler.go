package auth

import (
	"errors"
	"time"

	"gradevault/core/logger"
	mwauth "gradevault/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// refreshCookie is the HTTP-only cookie carrying the refresh token.
const refreshCookie = "refreshToken"

// Handler handles HTTP requests for accounts and sessions.
type Handler struct {
	service       *Service
	logger        *zap.Logger
	guard         fiber.Handler
	refreshTTL    time.Duration
	secureCookies bool
}

// NewHandler creates a new HTTP handler. The guard protects only the
// account-deletion route; the other auth routes are public by nature.
func NewHandler(service *Service, logger *zap.Logger, guard fiber.Handler, refreshTTL time.Duration, secureCookies bool) *Handler {
	return &Handler{service: service, logger: logger, guard: guard, refreshTTL: refreshTTL, secureCookies: secureCookies}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/auth")
	group.Post("/register", h.HandleRegister)
	group.Post("/login", h.HandleLogin)
	group.Post("/token", h.HandleRefresh)
	group.Get("/check", h.HandleCheck)
	group.Delete("/user", h.guard, h.HandleDeleteUser)
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new account.
// @Summary Register
// @Description Create an account. Email and username must be unused.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body registerRequest true "Credentials"
// @Success 201 {object} map[string]string "Registered"
// @Failure 400 {object} map[string]string "Missing fields or already registered"
// @Router /api/auth/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email, username and password are required"})
	}

	err := h.service.Register(c.Context(), req.Email, req.Username, req.Password)
	if errors.Is(err, ErrAlreadyRegistered) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email or username already registered"})
	}
	if err != nil {
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user registered"})
}

// HandleLogin verifies credentials and issues tokens.
// @Summary Login
// @Description Verify credentials. The access token is returned in the body; the refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]string "Access token and user info"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 401 {object} map[string]string "Wrong password"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	session, err := h.service.Login(c.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	case errors.Is(err, ErrWrongPassword):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong password"})
	case err != nil:
		l.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     refreshCookie,
		Value:    session.RefreshToken,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
	})

	return c.JSON(fiber.Map{
		"message":     "login successful",
		"accessToken": session.AccessToken,
		"username":    session.User.Username,
		"email":       session.User.Email,
	})
}

// HandleRefresh exchanges the refresh cookie for a new access token.
// @Summary Refresh Access Token
// @Description Exchange the HTTP-only refresh cookie for a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Access token"
// @Failure 400 {object} map[string]string "Missing refresh token"
// @Failure 403 {object} map[string]string "Expired or invalid refresh token"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/auth/token [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	refresh := c.Cookies(refreshCookie)
	if refresh == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing refresh token"})
	}

	access, err := h.service.RefreshAccess(c.Context(), refresh)
	switch {
	case errors.Is(err, ErrInvalidRefresh):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "refresh token expired or invalid"})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	case err != nil:
		l.Error("Token refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(fiber.Map{"accessToken": access})
}

// HandleCheck probes whether an email or username is taken.
// @Summary Check Availability
// @Description Report whether an account exists for the given email or username.
// @Tags auth
// @Produce json
// @Param email query string false "Email"
// @Param username query string false "Username"
// @Success 200 {object} map[string]bool "Existence flag"
// @Failure 400 {object} map[string]string "Neither email nor username given"
// @Router /api/auth/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	// Probes must never be served from cache (no 304s).
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")

	email := c.Query("email")
	username := c.Query("username")
	if email == "" && username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "specify email or username"})
	}

	exists, err := h.service.Exists(c.Context(), email, username)
	if err != nil {
		l.Error("Availability check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(fiber.Map{"exists": exists})
}

// HandleDeleteUser deletes the authenticated account and all its records.
// @Summary Delete Account
// @Description Delete the authenticated account and every grade record it owns.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /api/auth/user [delete]
func (h *Handler) HandleDeleteUser(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	err := h.service.DeleteAccount(c.Context(), mwauth.OwnerID(c))
	if errors.Is(err, ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	if err != nil {
		l.Error("Account deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(fiber.Map{"message": "user and all associated data deleted"})
}
