package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

// invoiceDueDays is how far out an invoice falls due after issuance.
const invoiceDueDays = 30

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	orderRepo   portsrepo.OrderRepositoryFacade
}

// NewInvoiceService creates a new instance of invoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, orderRepo portsrepo.OrderRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, orderRepo: orderRepo}
}

// CreateInvoice bills an order the caller owns. The owner-scoped order
// lookup conflates "absent" and "someone else's order" into NOT_FOUND.
func (s *invoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, userID, req.OrderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Order not found")
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	tax := decimal.Zero
	if req.Tax != nil {
		tax = *req.Tax
	}

	invoiceNumber, err := generateReference("INV")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: invoiceNumber,
		UserID:        userID,
		OrderID:       order.OrderID,
		Amount:        req.Amount,
		Tax:           tax,
		Total:         req.Amount.Add(tax),
		Status:        domain.InvoiceStatusDraft,
		IssuedDate:    now,
		DueDate:       now.AddDate(0, 0, invoiceDueDays),
		Order:         order,
		Timestamps:    domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	return &invoice, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
