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
	"github.com/mdfaizanashrafi/sovereon/internal/utils"
)

type orderService struct {
	orderRepo   portsrepo.OrderRepositoryFacade
	serviceRepo portsrepo.ServiceRepositoryFacade
}

// NewOrderService creates a new instance of orderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, serviceRepo portsrepo.ServiceRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, serviceRepo: serviceRepo}
}

// CreateOrder places an order against a catalog service. Pricing defaults
// to the service base price times quantity when no total is supplied.
func (s *orderService) CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Service not found")
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	total := service.BasePrice.Mul(decimal.NewFromInt(int64(quantity)))
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}

	orderNumber, err := generateReference("ORD")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := domain.Order{
		OrderID:     uuid.NewString(),
		OrderNumber: orderNumber,
		UserID:      userID,
		ServiceID:   service.ServiceID,
		Quantity:    quantity,
		UnitPrice:   service.BasePrice,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
		Service:     service,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return &order, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, userID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// generateReference builds a human-readable unique reference like
// ORD-1756712345-a1b2c3d4.
func generateReference(prefix string) (string, error) {
	suffix, err := utils.GenerateSecureRandomString(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate reference suffix: %w", err)
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().Unix(), suffix), nil
}
