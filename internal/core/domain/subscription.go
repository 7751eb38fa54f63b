package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus tracks the lifecycle of a recurring plan.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a recurring plan a user holds on a catalog service.
type Subscription struct {
	SubscriptionID     string             `json:"id"`
	UserID             string             `json:"userId"`
	ServiceID          string             `json:"serviceId"`
	PlanName           string             `json:"planName"`
	Price              decimal.Decimal    `json:"price"`
	BillingCycle       string             `json:"billingCycle"`
	Status             SubscriptionStatus `json:"status"`
	CurrentPeriodStart time.Time          `json:"currentPeriodStart"`
	CurrentPeriodEnd   time.Time          `json:"currentPeriodEnd"`
	CancelledAt        *time.Time         `json:"cancelledAt,omitempty"`
	Service            *Service           `json:"service,omitempty"`
	Timestamps
}
