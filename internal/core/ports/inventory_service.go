package ports

import (
	"context"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// RoomFormInput mirrors the admin room form: localized name/description plus
// two free-text comma-separated amenity lists.
type RoomFormInput struct {
	NameEN        string
	NameVN        string
	DescriptionEN string
	DescriptionVN string
	Price         float64
	Capacity      int
	ImageURL      string
	Type          domain.RoomType
	AmenitiesEN   string
	AmenitiesVN   string
}

// RoomResult is returned by create/update so callers can surface the
// amenity-merge warning alongside the stored record.
type RoomResult struct {
	Room domain.Room
	// AmenityMismatch is set when the EN and VN amenity lists differed in
	// length; trailing VN entries were dropped.
	AmenityMismatch bool
}

// InventoryService exposes the admin-only room management operations and the
// derived statistics over the working room collection.
type InventoryService interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	CreateRoom(ctx context.Context, input RoomFormInput) (*RoomResult, error)
	// UpdateRoom replaces every field except id and available, which are
	// preserved from the stored record.
	UpdateRoom(ctx context.Context, id string, input RoomFormInput) (*RoomResult, error)
	// DeleteRoom requires confirmed=true; removal is unconditional once
	// confirmed. Unknown ids are silent no-ops.
	DeleteRoom(ctx context.Context, id string, confirmed bool) error
	// ToggleAvailability flips available; unknown ids are silent no-ops.
	ToggleAvailability(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.RoomStats, error)
}
