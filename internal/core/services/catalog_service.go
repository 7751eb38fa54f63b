package services

import (
	"context"
	"fmt"

	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
	portssvc "github.com/mdfaizanashrafi/sovereon/internal/core/ports/services"
)

// catalogService serves the public services catalog. The catalog is seeded
// data; the portal only reads it.
type catalogService struct {
	serviceRepo portsrepo.ServiceRepositoryFacade
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(serviceRepo portsrepo.ServiceRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{serviceRepo: serviceRepo}
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.serviceRepo.FindActiveServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get service by slug: %w", err)
	}
	return service, nil
}
