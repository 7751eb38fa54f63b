package domain

import "github.com/shopspring/decimal"

// Service is a catalog entry the agency sells (design, hosting, marketing).
type Service struct {
	ServiceID   string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Features    []string        `json:"features"`
	IsActive    bool            `json:"isActive"`
	Timestamps
}
