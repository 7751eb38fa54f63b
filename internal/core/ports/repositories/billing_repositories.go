package repositories

import (
	"context"
	"time"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
)

// OrderRepositoryFacade defines persistence operations for orders.
// Lookups are scoped by owner so that "absent" and "not owned by caller"
// are indistinguishable to the service layer.
type OrderRepositoryFacade interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	FindOrderByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	FindOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// InvoiceRepositoryFacade defines persistence operations for invoices.
type InvoiceRepositoryFacade interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
	FindInvoicesByUser(ctx context.Context, userID string) ([]domain.Invoice, error)

	// MarkInvoicePaid flips an invoice to paid with the given settlement time.
	MarkInvoicePaid(ctx context.Context, invoiceID string, paidAt time.Time) error
}

// SubscriptionRepositoryFacade defines persistence operations for subscriptions.
type SubscriptionRepositoryFacade interface {
	SaveSubscription(ctx context.Context, sub domain.Subscription) error
	FindSubscriptionByID(ctx context.Context, userID, subscriptionID string) (*domain.Subscription, error)
	FindSubscriptionsByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
	UpdateSubscription(ctx context.Context, sub domain.Subscription) error
}

// PaymentRepositoryFacade defines persistence operations for payments.
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	FindPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error)
	FindPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error)
}
