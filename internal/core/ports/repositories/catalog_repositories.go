package repositories

import (
	"context"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
)

// ServiceReader defines read operations for the services catalog.
type ServiceReader interface {
	// FindServiceByID retrieves a catalog service by ID.
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)

	// FindServiceBySlug retrieves a catalog service by its URL slug.
	FindServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)

	// FindActiveServices lists all active catalog services.
	FindActiveServices(ctx context.Context) ([]domain.Service, error)
}

// ServiceRepositoryFacade combines catalog repository interfaces. The
// catalog is seeded by migrations; the portal never writes to it.
type ServiceRepositoryFacade interface {
	ServiceReader
}
