package memory

import (
	"context"
	"sync"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// BookingRepository holds in-flight checkout attempts keyed by id. Attempts
// are removed when they reach a terminal state.
type BookingRepository struct {
	mu       sync.RWMutex
	attempts map[string]domain.BookingAttempt
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{attempts: make(map[string]domain.BookingAttempt)}
}

func (r *BookingRepository) Save(_ context.Context, attempt *domain.BookingAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[attempt.ID] = *attempt
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id string) (*domain.BookingAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attempt, ok := r.attempts[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := attempt
	return &clone, nil
}

func (r *BookingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, id)
	return nil
}
