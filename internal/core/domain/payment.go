package domain

import "github.com/shopspring/decimal"

// PaymentStatus tracks settlement state. The gateway integration is stubbed:
// payments are recorded as succeeded immediately, no real capture happens.
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment records a settlement against an invoice and/or order.
type Payment struct {
	PaymentID     string          `json:"id"`
	UserID        string          `json:"userId"`
	InvoiceID     string          `json:"invoiceId,omitempty"`
	OrderID       string          `json:"orderId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        PaymentStatus   `json:"status"`
	Timestamps
}
