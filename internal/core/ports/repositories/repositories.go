package repositories

// RepositoryProvider bundles all repository facades so wiring code can pass
// a single dependency into the service container.
type RepositoryProvider struct {
	User         UserRepositoryFacade
	Service      ServiceRepositoryFacade
	Order        OrderRepositoryFacade
	Invoice      InvoiceRepositoryFacade
	Subscription SubscriptionRepositoryFacade
	Payment      PaymentRepositoryFacade
}
