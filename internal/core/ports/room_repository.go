package ports

import (
	"context"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// RoomRepository defines storage operations for the room inventory working copy.
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	// Update replaces the stored record wholesale; it returns
	// domain.ErrRoomNotFound when id is unknown.
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}
