package ports

import (
	"context"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// RegisterInput carries the self-registration form fields. Registration
// always produces a GUEST; there is no way to self-register as ADMIN.
type RegisterInput struct {
	Name  string
	Email string
	Phone string
}

// RegistryService owns the user registry and the single process session.
type RegistryService interface {
	// Login picks the first active user of the requested role. When none
	// matches it synthesizes an ephemeral session user without touching the
	// registry. It never fails.
	Login(ctx context.Context, role domain.Role) *domain.User
	// Register appends a new GUEST and auto-logs it in as the session user.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Logout(ctx context.Context)
	// CurrentUser returns the session user, or nil when unauthenticated.
	CurrentUser(ctx context.Context) *domain.User

	ListUsers(ctx context.Context) ([]domain.User, error)
	// ToggleUserStatus flips is_active; unknown ids are silent no-ops.
	ToggleUserStatus(ctx context.Context, id string) error
	// DeleteUser removes a registry entry. Targets with role ADMIN are
	// refused with domain.ErrAdminUndeletable; unknown ids are no-ops.
	DeleteUser(ctx context.Context, id string) error
}
