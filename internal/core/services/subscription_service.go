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

type subscriptionService struct {
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	serviceRepo      portsrepo.ServiceRepositoryFacade
}

// NewSubscriptionService creates a new instance of subscriptionService.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade, serviceRepo portsrepo.ServiceRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo, serviceRepo: serviceRepo}
}

// CreateSubscription starts a recurring plan on a catalog service. Plan
// name and price default from the service; the first period opens now and
// runs 30 days.
func (s *subscriptionService) CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Service not found")
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	planName := req.PlanName
	if planName == "" {
		planName = service.Name
	}
	price := service.BasePrice
	if req.Price != nil {
		price = *req.Price
	}
	billingCycle := req.BillingCycle
	if billingCycle == "" {
		billingCycle = "monthly"
	}

	now := time.Now()
	sub := domain.Subscription{
		SubscriptionID:     uuid.NewString(),
		UserID:             userID,
		ServiceID:          service.ServiceID,
		PlanName:           planName,
		Price:              price,
		BillingCycle:       billingCycle,
		Status:             domain.SubscriptionStatusActive,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.AddDate(0, 0, 30),
		Service:            service,
		Timestamps:         domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}
	return &sub, nil
}

// CancelSubscription marks an owned subscription cancelled.
func (s *subscriptionService) CancelSubscription(ctx context.Context, userID, subscriptionID string) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, userID, subscriptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Subscription not found")
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	// Cancelling twice keeps the original cancellation time.
	if sub.Status == domain.SubscriptionStatusCancelled {
		return sub, nil
	}

	now := time.Now()
	sub.Status = domain.SubscriptionStatusCancelled
	sub.CancelledAt = &now
	sub.UpdatedAt = now

	if err := s.subscriptionRepo.UpdateSubscription(ctx, *sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	subs, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}
