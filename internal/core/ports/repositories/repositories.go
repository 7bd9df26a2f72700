package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at wiring time.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	OrderRepo       OrderRepositoryFacade
	UserRepo        UserRepositoryFacade
	UserLimitsRepo  UserLimitsRepositoryFacade
}
