package services

import (
	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
	"github.com/mdfaizanashrafi/sovereon/internal/platform/config"
)

// NewServiceContainer wires all application services from the repository
// provider and configuration. Everything is constructed here and injected;
// there is no package-level state.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	tokenService := NewTokenService(cfg, repos.User)
	return &portssvc.ServiceContainer{
		Auth:         NewAuthService(repos.User, tokenService),
		Token:        tokenService,
		OAuth:        NewOAuthService(cfg),
		User:         NewUserService(repos.User),
		Catalog:      NewCatalogService(repos.Service),
		Order:        NewOrderService(repos.Order, repos.Service),
		Invoice:      NewInvoiceService(repos.Invoice, repos.Order),
		Subscription: NewSubscriptionService(repos.Subscription, repos.Service),
		Payment:      NewPaymentService(repos.Payment, repos.Invoice, repos.Order),
	}
}
