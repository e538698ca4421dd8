package memory

import (
	"context"
	"sync"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// RoomRepository holds the inventory working copy the admin console mutates.
type RoomRepository struct {
	mu    sync.RWMutex
	rooms []domain.Room
}

func NewRoomRepository(seed []domain.Room) *RoomRepository {
	rooms := make([]domain.Room, len(seed))
	copy(rooms, seed)
	return &RoomRepository{rooms: rooms}
}

func (r *RoomRepository) List(_ context.Context) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Room, len(r.rooms))
	for i, room := range r.rooms {
		out[i] = cloneRoom(room)
	}
	return out, nil
}

func (r *RoomRepository) FindByID(_ context.Context, id string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.ID == id {
			clone := cloneRoom(room)
			return &clone, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *RoomRepository) Create(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = append(r.rooms, cloneRoom(*room))
	return nil
}

func (r *RoomRepository) Update(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].ID == room.ID {
			r.rooms[i] = cloneRoom(*room)
			return nil
		}
	}
	return domain.ErrRoomNotFound
}

func (r *RoomRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			return nil
		}
	}
	return domain.ErrRoomNotFound
}

// cloneRoom deep-copies the amenity slice so mutations on a returned room
// never reach the stored record.
func cloneRoom(room domain.Room) domain.Room {
	amenities := make([]domain.LocalizedText, len(room.Amenities))
	copy(amenities, room.Amenities)
	room.Amenities = amenities
	return room
}
