// Package memory provides the in-memory adapters behind the core repository
// ports. All collections are process-lifetime mock data: nothing is persisted
// and nothing survives a restart. Reads return defensive copies so callers
// can never alias internal state.
package memory

import (
	"context"
	"sync"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// UserRepository holds the user registry. Insertion order is preserved so
// role logins deterministically pick the first matching entry.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserRepository seeds the registry with the given users.
func NewUserRepository(seed []domain.User) *UserRepository {
	users := make([]domain.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindFirstActiveByRole(_ context.Context, role domain.Role) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Role == role && u.IsActive {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].IsActive = active
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}
