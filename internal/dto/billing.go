package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	ServiceID   string           `json:"serviceId" binding:"required"`
	Quantity    int              `json:"quantity" binding:"omitempty,min=1"`
	TotalAmount *decimal.Decimal `json:"totalAmount" binding:"omitempty"`
}

// CreateInvoiceRequest is the body of POST /api/invoices.
type CreateInvoiceRequest struct {
	OrderID string           `json:"orderId" binding:"required"`
	Amount  decimal.Decimal  `json:"amount" binding:"required"`
	Tax     *decimal.Decimal `json:"tax" binding:"omitempty"`
}

// CreateSubscriptionRequest is the body of POST /api/subscriptions.
type CreateSubscriptionRequest struct {
	ServiceID    string           `json:"serviceId" binding:"required"`
	PlanName     string           `json:"planName" binding:"omitempty,max=200"`
	Price        *decimal.Decimal `json:"price" binding:"omitempty"`
	BillingCycle string           `json:"billingCycle" binding:"omitempty,oneof=monthly yearly"`
}

// CreatePaymentRequest is the body of POST /api/payments. At least one of
// invoiceId/orderId must reference a resource owned by the caller.
type CreatePaymentRequest struct {
	InvoiceID     string          `json:"invoiceId" binding:"omitempty"`
	OrderID       string          `json:"orderId" binding:"omitempty"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,max=50"`
}
