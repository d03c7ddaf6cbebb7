package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is; the API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password. The two cases are deliberately indistinguishable
	// to prevent account enumeration.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotOwned indicates a task is owned by a different user than the one
	// making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("task is owned by another user")
)
