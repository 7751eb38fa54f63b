package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

// paymentService records settlements. There is no real gateway behind it:
// a created payment succeeds immediately and settles its invoice.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	orderRepo   portsrepo.OrderRepositoryFacade
}

// NewPaymentService creates a new instance of paymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, orderRepo portsrepo.OrderRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo, orderRepo: orderRepo}
}

func (s *paymentService) CreatePayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if req.InvoiceID == "" && req.OrderID == "" {
		return nil, apperrors.NewValidationError("Either invoiceId or orderId is required")
	}

	if req.InvoiceID != "" {
		if _, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, req.InvoiceID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("Invoice not found")
			}
			return nil, fmt.Errorf("failed to load invoice: %w", err)
		}
	}
	if req.OrderID != "" {
		if _, err := s.orderRepo.FindOrderByID(ctx, userID, req.OrderID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("Order not found")
			}
			return nil, fmt.Errorf("failed to load order: %w", err)
		}
	}

	method := req.PaymentMethod
	if method == "" {
		method = "credit_card"
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		UserID:        userID,
		InvoiceID:     req.InvoiceID,
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      "USD",
		PaymentMethod: method,
		Status:        domain.PaymentStatusSucceeded,
		Timestamps:    domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	if payment.InvoiceID != "" {
		if err := s.invoiceRepo.MarkInvoicePaid(ctx, payment.InvoiceID, now); err != nil {
			return nil, fmt.Errorf("failed to mark invoice paid: %w", err)
		}
	}

	return &payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, userID, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
