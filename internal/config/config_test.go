// AngelaMos | 2026
// config_test.go

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{Environment: "development"},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{URL: "postgres://localhost/quotevault"},
		Redis:    RedisConfig{URL: "redis://localhost:6379/0"},
		JWT: JWTConfig{
			Secret:      strings.Repeat("s", 32),
			TokenExpire: 168 * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowCredentials: true,
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validate(validConfig()))

	t.Run("missing database url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.URL = ""
		require.Error(t, validate(cfg))
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Secret = ""
		require.Error(t, validate(cfg))
	})

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Secret = "too-short"
		require.Error(t, validate(cfg))
	})

	t.Run("non-positive token expiry", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.TokenExpire = 0
		require.Error(t, validate(cfg))
	})

	t.Run("credentialed wildcard origin", func(t *testing.T) {
		cfg := validConfig()
		cfg.CORS.AllowedOrigins = []string{"*"}
		require.Error(t, validate(cfg))
	})

	t.Run("insecure otel in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "production"
		cfg.Otel.Enabled = true
		cfg.Otel.Insecure = true
		require.Error(t, validate(cfg))
	})
}

func TestServerAddress(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	assert.Equal(t, "127.0.0.1:9000", s.Address())
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Environment = "production"
	assert.True(t, cfg.IsProduction())
}

func TestEnvKeyReplacer(t *testing.T) {
	assert.Equal(t, "database.url", envKeyReplacer("DATABASE_URL"))
	assert.Equal(t, "jwt.secret", envKeyReplacer("JWT_SECRET"))
	// Unmapped variables are dropped rather than guessed at.
	assert.Empty(t, envKeyReplacer("PATH"))
}
