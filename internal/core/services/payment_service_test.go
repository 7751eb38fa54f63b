package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/core/services"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, userID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByUser(ctx context.Context, userID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) MarkInvoicePaid(ctx context.Context, invoiceID string, paidAt time.Time) error {
	args := m.Called(ctx, invoiceID, paidAt)
	return args.Error(0)
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockInvoiceRepo *MockInvoiceRepository
	mockOrderRepo   *MockOrderRepository
	paymentService  portssvc.PaymentSvcFacade
	ctx             context.Context
	userID          string
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockPaymentRepo = new(MockPaymentRepository)
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.mockOrderRepo = new(MockOrderRepository)
	s.paymentService = services.NewPaymentService(s.mockPaymentRepo, s.mockInvoiceRepo, s.mockOrderRepo)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
}

func (s *PaymentServiceTestSuite) TestCreatePayment_RequiresReference() {
	_, err := s.paymentService.CreatePayment(s.ctx, s.userID, dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(100),
	})

	s.Require().Error(err)
	s.Equal(apperrors.CodeValidation, apperrors.FromError(err).Code)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_AgainstInvoiceSettlesIt() {
	invoice := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		UserID:    s.userID,
		Status:    domain.InvoiceStatusSent,
	}
	s.mockInvoiceRepo.On("FindInvoiceByID", s.ctx, s.userID, invoice.InvoiceID).
		Return(invoice, nil).Once()
	s.mockPaymentRepo.On("SavePayment", s.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.InvoiceID == invoice.InvoiceID &&
			p.Status == domain.PaymentStatusSucceeded &&
			p.Currency == "USD" &&
			p.PaymentMethod == "credit_card"
	})).Return(nil).Once()
	s.mockInvoiceRepo.On("MarkInvoicePaid", s.ctx, invoice.InvoiceID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	payment, err := s.paymentService.CreatePayment(s.ctx, s.userID, dto.CreatePaymentRequest{
		InvoiceID: invoice.InvoiceID,
		Amount:    decimal.NewFromInt(2999),
	})

	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusSucceeded, payment.Status)
	s.mockInvoiceRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestCreatePayment_AgainstOrderSkipsInvoice() {
	order := &domain.Order{OrderID: uuid.NewString(), UserID: s.userID}
	s.mockOrderRepo.On("FindOrderByID", s.ctx, s.userID, order.OrderID).
		Return(order, nil).Once()
	s.mockPaymentRepo.On("SavePayment", s.ctx, mock.Anything).Return(nil).Once()

	payment, err := s.paymentService.CreatePayment(s.ctx, s.userID, dto.CreatePaymentRequest{
		OrderID:       order.OrderID,
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: "bank_transfer",
	})

	s.Require().NoError(err)
	s.Equal("bank_transfer", payment.PaymentMethod)
	s.mockInvoiceRepo.AssertNotCalled(s.T(), "MarkInvoicePaid", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_ForeignInvoiceIsNotFound() {
	s.mockInvoiceRepo.On("FindInvoiceByID", s.ctx, s.userID, "foreign-invoice").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.paymentService.CreatePayment(s.ctx, s.userID, dto.CreatePaymentRequest{
		InvoiceID: "foreign-invoice",
		Amount:    decimal.NewFromInt(100),
	})

	s.Require().Error(err)
	s.Equal(apperrors.CodeNotFound, apperrors.FromError(err).Code)
	s.mockPaymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
