package services

import (
	"context"
	"time"

	"github.com/ecucondor/exchange-backend/internal/core/domain"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/platform/config"
	"github.com/ecucondor/exchange-backend/internal/utils"
)

// tokenService issues JWT access tokens from application configuration.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a signed JWT for the given user.
func (s *tokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}
