package services

import (
	"context"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

// CatalogSvcFacade exposes the public services catalog.
type CatalogSvcFacade interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)
}

// OrderSvcFacade exposes owner-scoped order operations.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

// InvoiceSvcFacade exposes owner-scoped invoice operations.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error)
}

// SubscriptionSvcFacade exposes owner-scoped subscription operations.
type SubscriptionSvcFacade interface {
	CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)
	CancelSubscription(ctx context.Context, userID, subscriptionID string) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)
}

// PaymentSvcFacade exposes owner-scoped payment operations. Payment capture
// is stubbed: created payments succeed immediately and settle their invoice.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, userID, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID string) ([]domain.Payment, error)
}
