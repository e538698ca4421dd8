package ports

import (
	"context"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// BookingRepository holds in-flight checkout attempts. Attempts are ephemeral:
// terminal states are removed, nothing survives the process.
type BookingRepository interface {
	Save(ctx context.Context, attempt *domain.BookingAttempt) error
	FindByID(ctx context.Context, id string) (*domain.BookingAttempt, error)
	Delete(ctx context.Context, id string) error
}
