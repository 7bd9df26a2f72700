package services

import (
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/ecucondor/exchange-backend/internal/core/ports/services"
	"github.com/ecucondor/exchange-backend/internal/platform/config"
)

// NewServiceContainer creates a service container with all dependencies wired.
// The rate service is constructed first because exchange pricing (and through
// it, transaction creation) depends on it.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, priceFeed portsrepo.PriceFeed) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Rate = NewRateService(priceFeed, cfg.RateCacheTTL)
	container.Exchange = NewExchangeService(container.Rate)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Exchange)
	container.Order = NewOrderService(repos.OrderRepo, repos.UserLimitsRepo)
	container.User = NewUserService(repos.UserRepo, repos.UserLimitsRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.RateSvcFacade        = (*rateService)(nil)
	_ portssvc.ExchangeSvcFacade    = (*exchangeService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.OrderSvcFacade       = (*orderService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.TokenSvcFacade       = (*tokenService)(nil)
)
