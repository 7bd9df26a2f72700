package repositories

import (
	"context"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
)

// UserReader defines read operations for users.
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// UserLimitsReader defines read access to the per-user limits record.
// The record is maintained by back-office tooling; the exchange core only
// reads it.
type UserLimitsReader interface {
	// FindLimitsByUserID retrieves the limits record for a user.
	FindLimitsByUserID(ctx context.Context, userID string) (*domain.UserLimits, error)
}

// UserLimitsWriter defines write access used only when seeding the default
// record at registration.
type UserLimitsWriter interface {
	// SaveLimits persists or replaces a limits record.
	SaveLimits(ctx context.Context, limits domain.UserLimits) error
}

// UserLimitsRepositoryFacade combines the limits interfaces.
type UserLimitsRepositoryFacade interface {
	UserLimitsReader
	UserLimitsWriter
}
