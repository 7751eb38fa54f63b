package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/core/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockOrderRepo   *MockOrderRepository
	invoiceService  portssvc.InvoiceSvcFacade
	ctx             context.Context
	userID          string
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.mockOrderRepo = new(MockOrderRepository)
	s.invoiceService = services.NewInvoiceService(s.mockInvoiceRepo, s.mockOrderRepo)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_TotalsAndDueDate() {
	order := &domain.Order{OrderID: uuid.NewString(), UserID: s.userID}
	tax := decimal.NewFromInt(299)
	s.mockOrderRepo.On("FindOrderByID", s.ctx, s.userID, order.OrderID).
		Return(order, nil).Once()
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.Anything).Return(nil).Once()

	invoice, err := s.invoiceService.CreateInvoice(s.ctx, s.userID, dto.CreateInvoiceRequest{
		OrderID: order.OrderID,
		Amount:  decimal.NewFromInt(2999),
		Tax:     &tax,
	})

	s.Require().NoError(err)
	s.True(invoice.Total.Equal(decimal.NewFromInt(3298)))
	s.Equal(domain.InvoiceStatusDraft, invoice.Status)
	s.True(strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	s.WithinDuration(invoice.IssuedDate.AddDate(0, 0, 30), invoice.DueDate, time.Second)
	s.Nil(invoice.PaidDate)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_DefaultsTaxToZero() {
	order := &domain.Order{OrderID: uuid.NewString(), UserID: s.userID}
	s.mockOrderRepo.On("FindOrderByID", s.ctx, s.userID, order.OrderID).
		Return(order, nil).Once()
	s.mockInvoiceRepo.On("SaveInvoice", s.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Tax.IsZero() && inv.Total.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	_, err := s.invoiceService.CreateInvoice(s.ctx, s.userID, dto.CreateInvoiceRequest{
		OrderID: order.OrderID,
		Amount:  decimal.NewFromInt(500),
	})

	s.Require().NoError(err)
	s.mockInvoiceRepo.AssertExpectations(s.T())
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_ForeignOrderIsNotFound() {
	s.mockOrderRepo.On("FindOrderByID", s.ctx, s.userID, "foreign-order").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.invoiceService.CreateInvoice(s.ctx, s.userID, dto.CreateInvoiceRequest{
		OrderID: "foreign-order",
		Amount:  decimal.NewFromInt(100),
	})

	s.Require().Error(err)
	s.Equal(apperrors.CodeNotFound, apperrors.FromError(err).Code)
	s.mockInvoiceRepo.AssertNotCalled(s.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
