// Package config loads runtime configuration from environment variables,
// applying documented defaults for everything except the JWT secret, and
// validates the resulting immutable Config value at startup.
package config
