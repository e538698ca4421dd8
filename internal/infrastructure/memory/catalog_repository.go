package memory

import (
	"context"
	"sync"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// ServiceRepository exposes the service catalog. The admin console has no
// service CRUD in scope, so the collection is read-only after seeding.
type ServiceRepository struct {
	mu       sync.RWMutex
	services []domain.Service
}

func NewServiceRepository(seed []domain.Service) *ServiceRepository {
	services := make([]domain.Service, len(seed))
	copy(services, seed)
	return &ServiceRepository{services: services}
}

func (r *ServiceRepository) List(_ context.Context) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *ServiceRepository) FindByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.services {
		if s.ID == id {
			clone := s
			return &clone, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

// PartnerRepository exposes the read-only partner roster.
type PartnerRepository struct {
	partners []domain.Partner
}

func NewPartnerRepository(seed []domain.Partner) *PartnerRepository {
	partners := make([]domain.Partner, len(seed))
	copy(partners, seed)
	return &PartnerRepository{partners: partners}
}

func (r *PartnerRepository) List(_ context.Context) ([]domain.Partner, error) {
	out := make([]domain.Partner, len(r.partners))
	copy(out, r.partners)
	return out, nil
}
