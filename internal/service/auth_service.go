package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TokenPair bundles the access and refresh tokens issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService provides user registration and login.
type AuthService interface {
	// Register creates a new user from the given email, name, and raw
	// password. The password is hashed before it reaches the store.
	// Returns store.ErrEmailExists if the email is already taken.
	Register(ctx context.Context, email, name, password string) (*domain.User, error)

	// Login verifies the credentials and issues an access/refresh token
	// pair. Unknown email and wrong password both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	passwords  PasswordManager
	db         *sql.DB
	logger     *slog.Logger
}

// PasswordManager combines hashing and verification. The bcrypt
// implementation in the auth package satisfies it.
type PasswordManager interface {
	auth.PasswordHasher
	auth.PasswordVerifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwords PasswordManager,
	db *sql.DB,
	logger *slog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		passwords:  passwords,
		db:         db,
		logger:     logger.With("component", "auth_service"),
	}
}

// Register creates a new user. The duplicate-email check and the insert run
// in a single transaction so concurrent registrations of the same email
// cannot both succeed.
func (s *AuthServiceImpl) Register(
	ctx context.Context,
	email, name, password string,
) (*domain.User, error) {
	hash, err := s.passwords.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(email, name, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		if _, err := txStore.GetByEmail(ctx, user.Email); err == nil {
			return store.ErrEmailExists
		} else if !errors.Is(err, store.ErrUserNotFound) {
			return err
		}

		return txStore.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register with existing email", "email", user.Email)
		} else {
			s.logger.Error("failed to create user", "error", err, "email", user.Email)
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials and issues a token pair.
func (s *AuthServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (*TokenPair, *domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same error as a wrong password; see ErrInvalidCredentials.
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user by email", "error", err)
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err, "user_id", user.ID)
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate refresh token", "error", err, "user_id", user.ID)
		return nil, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.logger.Debug("user logged in", "user_id", user.ID)
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, user, nil
}
