// Package auth provides JWT token management and password hashing for the
// task service. The token manager is stateless beyond its signing secret and
// TTL configuration and is safe for concurrent use by all requests.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateAccessToken creates a signed JWT access token carrying the
	// user's ID and email. Access tokens are short-lived.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// GenerateRefreshToken creates a signed JWT refresh token carrying only
	// the user's ID. Refresh tokens have a longer lifetime and are intended
	// to mint new access tokens.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns ErrExpiredToken if the token's expiry has passed,
	// or ErrInvalidToken for any other verification failure (bad signature,
	// malformed token, wrong algorithm, wrong token type).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// ValidateRefreshToken validates the provided refresh token string and
	// extracts the claims. Returns ErrExpiredRefreshToken or
	// ErrInvalidRefreshToken analogously to ValidateToken.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claim set extracted from a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Email is the user's email address. Present on access tokens only.
	Email string `json:"email,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	// Used to prevent token misuse across different contexts.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
