package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// JwtSecret signs access and refresh tokens. Required.
	JwtSecret string `mapstructure:"jwt_secret" default:""`
	// CorsOrigins is a comma-separated list of allowed browser origins.
	CorsOrigins string `mapstructure:"cors_origins" default:"http://localhost:4200"`
	// AccessTokenMinutes is the access token lifetime in minutes.
	AccessTokenMinutes int `mapstructure:"access_token_minutes" default:"60"`
	// RefreshTokenDays is the refresh token lifetime in days.
	RefreshTokenDays int `mapstructure:"refresh_token_days" default:"30"`
	// SecureCookies marks the refresh cookie Secure (HTTPS deployments).
	SecureCookies bool `mapstructure:"secure_cookies" default:"false"`
}

// AllowedOrigins returns the configured CORS origins, trimmed, empty
// entries removed.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CorsOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// HasSecret reports whether a signing secret is configured. The server
// refuses to start without one.
func (c Config) HasSecret() bool {
	return c.JwtSecret != ""
}
