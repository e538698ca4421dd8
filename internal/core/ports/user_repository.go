package ports

import (
	"context"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// UserRepository defines registry storage operations. The registry exclusively
// owns the user collection; all mutations flow through it.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindFirstActiveByRole returns the first registry entry matching role
	// with is_active=true, in insertion order.
	FindFirstActiveByRole(ctx context.Context, role domain.Role) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// SetActive flips nothing when id is unknown; callers treat misses as no-ops.
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
