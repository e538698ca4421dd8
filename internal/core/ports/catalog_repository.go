package ports

import (
	"context"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// ServiceRepository exposes the service catalog.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
}

// PartnerRepository exposes the read-only partner roster.
type PartnerRepository interface {
	List(ctx context.Context) ([]domain.Partner, error)
}
