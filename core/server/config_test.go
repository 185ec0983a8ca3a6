package server_test

import (
	"testing"

	"gradevault/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_AllowedOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{"Single", "http://localhost:4200", []string{"http://localhost:4200"}},
		{"Multiple", "https://app.example.com, http://localhost:4200", []string{"https://app.example.com", "http://localhost:4200"}},
		{"TrailingComma", "https://app.example.com,", []string{"https://app.example.com"}},
		{"Empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{CorsOrigins: tt.origins}
			assert.Equal(t, tt.want, c.AllowedOrigins())
		})
	}
}

func TestConfig_HasSecret(t *testing.T) {
	assert.False(t, server.Config{}.HasSecret())
	assert.True(t, server.Config{JwtSecret: "s3cret"}.HasSecret())
}
