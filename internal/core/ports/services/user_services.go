package services

import (
	"context"
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	"github.com/ecucondor/exchange-backend/internal/dto"
)

// UserSvcFacade handles registration and credential checks.
type UserSvcFacade interface {
	// Register creates a user with a hashed password and seeds the default
	// (unverified) limits record.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies email/password and returns the user on success.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken returns a signed JWT and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
