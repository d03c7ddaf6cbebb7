package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds all application configuration.
// It is populated once at startup and treated as immutable afterwards.
type Config struct {
	Server   ServerConfig   `validate:"required"`
	Database DatabaseConfig `validate:"required"`
	Auth     AuthConfig     `validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `validate:"required,gt=0,lt=65536"`
	ReadTimeout     time.Duration `validate:"required,gt=0"`
	WriteTimeout    time.Duration `validate:"required,gt=0"`
	ShutdownTimeout time.Duration `validate:"required,gt=0"`
	LogLevel        string        `validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,gt=0,lt=65536"`
	User     string `validate:"required"`
	Password string
	Name     string `validate:"required"`
	SSLMode  string `validate:"required"`
}

// URL assembles the postgres connection string from the individual settings.
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret       string        `validate:"required,min=32"`
	AccessTokenTTL  time.Duration `validate:"required,gt=0"`
	RefreshTokenTTL time.Duration `validate:"required,gt=0"`
}
