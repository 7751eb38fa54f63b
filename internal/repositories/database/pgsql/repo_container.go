package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
)

// NewRepositoryProvider builds all pgx repositories on one pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		User:         NewUserRepository(db),
		Service:      NewServiceRepository(db),
		Order:        NewOrderRepository(db),
		Invoice:      NewInvoiceRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Payment:      NewPaymentRepository(db),
	}
}
