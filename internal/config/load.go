package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values applied when an environment variable is unset or unparsable.
// Malformed durations and ints fall back to these rather than failing startup;
// only validation of the assembled Config (e.g. a missing JWT secret) is fatal.
const (
	defaultServerPort      = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"

	defaultDBHost    = "localhost"
	defaultDBPort    = 5432
	defaultDBUser    = "postgres"
	defaultDBPass    = "postgres"
	defaultDBName    = "taskdeck"
	defaultDBSSLMode = "disable"

	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Load reads configuration from environment variables, falling back to the
// documented defaults. A .env file in the working directory is loaded first
// when present; its values never override variables already set in the
// environment. Returns a populated Config or an error if validation fails.
func Load() (*Config, error) {
	// Non-fatal: a missing .env file simply means the environment is the
	// only source.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:            intOrDefault(v, "server.port", defaultServerPort),
			ReadTimeout:     durationOrDefault(v, "server.read_timeout", defaultReadTimeout),
			WriteTimeout:    durationOrDefault(v, "server.write_timeout", defaultWriteTimeout),
			ShutdownTimeout: durationOrDefault(v, "server.shutdown_timeout", defaultShutdownTimeout),
			LogLevel:        stringOrDefault(v, "log.level", defaultLogLevel),
		},
		Database: DatabaseConfig{
			Host:     stringOrDefault(v, "db.host", defaultDBHost),
			Port:     intOrDefault(v, "db.port", defaultDBPort),
			User:     stringOrDefault(v, "db.user", defaultDBUser),
			Password: stringOrDefault(v, "db.password", defaultDBPass),
			Name:     stringOrDefault(v, "db.name", defaultDBName),
			SSLMode:  stringOrDefault(v, "db.sslmode", defaultDBSSLMode),
		},
		Auth: AuthConfig{
			JWTSecret:       v.GetString("jwt.secret"),
			AccessTokenTTL:  durationOrDefault(v, "jwt.access_ttl", defaultAccessTokenTTL),
			RefreshTokenTTL: durationOrDefault(v, "jwt.refresh_ttl", defaultRefreshTokenTTL),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// stringOrDefault returns the configured string, or def when unset or blank.
func stringOrDefault(v *viper.Viper, key, def string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return def
}

// intOrDefault returns the configured int, or def when unset or unparsable.
func intOrDefault(v *viper.Viper, key string, def int) int {
	if n := v.GetInt(key); n > 0 {
		return n
	}
	return def
}

// durationOrDefault returns the configured duration, or def when unset or
// unparsable. viper yields zero for malformed values, which we treat the
// same as absent.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	if d := v.GetDuration(key); d > 0 {
		return d
	}
	return def
}
