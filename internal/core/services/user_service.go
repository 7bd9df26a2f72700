package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecucondor/exchange-backend/internal/apperrors"
	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/dto"
	"github.com/ecucondor/exchange-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// userService handles registration and credential checks. Anything beyond
// password login (sessions, OAuth, refresh) is the identity provider's job.
type userService struct {
	userRepo   portsrepo.UserRepositoryFacade
	limitsRepo portsrepo.UserLimitsWriter
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, limitsRepo portsrepo.UserLimitsWriter) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		limitsRepo: limitsRepo,
	}
}

// Register creates the user and seeds the default limits record (unverified,
// zero maximum) so the limits lookup never misses for a real user.
// Verification flips happen in back-office tooling, not through this API.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()

	user := domain.User{
		UserID:       userID,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	limits := domain.UserLimits{
		UserID:         userID,
		Verified:       false,
		MaxOrderAmount: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.limitsRepo.SaveLimits(ctx, limits); err != nil {
		return nil, fmt.Errorf("failed to seed user limits: %w", err)
	}

	return &user, nil
}

// Authenticate verifies the email/password pair. The same error is returned
// for an unknown email and a bad password.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
