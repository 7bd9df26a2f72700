package pgsql

import (
	portsrepo "github.com/ecucondor/exchange-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		OrderRepo:       newPgxOrderRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		UserLimitsRepo:  newPgxUserLimitsRepository(dbPool),
	}
}
