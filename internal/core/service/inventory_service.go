package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// InventoryService implements the admin room management operations over the
// in-memory working copy of the room collection.
type InventoryService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.RoomRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

func (s *InventoryService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.repo.List(ctx)
}

func (s *InventoryService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateRoom validates the form, parses the amenity lists, and stores a new
// room with a generated id and available=true.
func (s *InventoryService) CreateRoom(ctx context.Context, input ports.RoomFormInput) (*ports.RoomResult, error) {
	if err := validateRoomForm(input); err != nil {
		return nil, err
	}

	parsed := domain.ParseAmenities(input.AmenitiesEN, input.AmenitiesVN)
	room := roomFromForm(uuid.NewString(), true, input, parsed.Amenities)

	if err := s.repo.Create(ctx, &room); err != nil {
		return nil, err
	}

	s.logRoomSaved(room, parsed.Mismatch, "room created")
	return &ports.RoomResult{Room: room, AmenityMismatch: parsed.Mismatch}, nil
}

// UpdateRoom replaces every submitted field wholesale while preserving the
// stored id and availability flag.
func (s *InventoryService) UpdateRoom(ctx context.Context, id string, input ports.RoomFormInput) (*ports.RoomResult, error) {
	if err := validateRoomForm(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parsed := domain.ParseAmenities(input.AmenitiesEN, input.AmenitiesVN)
	room := roomFromForm(existing.ID, existing.Available, input, parsed.Amenities)

	if err := s.repo.Update(ctx, &room); err != nil {
		return nil, err
	}

	s.logRoomSaved(room, parsed.Mismatch, "room updated")
	return &ports.RoomResult{Room: room, AmenityMismatch: parsed.Mismatch}, nil
}

// DeleteRoom removes a room once the caller has confirmed. Bookings are
// ephemeral, so removal has no referential-integrity concerns. Unknown ids
// are silent no-ops.
func (s *InventoryService) DeleteRoom(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrDeleteNotConfirmed
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Debug().Str("room_id", id).Msg("delete of unknown room ignored")
		return nil
	}
	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

// ToggleAvailability flips the available flag. Unknown ids are silent no-ops.
func (s *InventoryService) ToggleAvailability(ctx context.Context, id string) error {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug().Str("room_id", id).Msg("toggle of unknown room ignored")
		return nil
	}
	room.Available = !room.Available
	if err := s.repo.Update(ctx, room); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Bool("available", room.Available).Msg("room availability toggled")
	return nil
}

// Stats recomputes the derived statistics from the current collection on
// every call.
func (s *InventoryService) Stats(ctx context.Context) (*domain.RoomStats, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeRoomStats(rooms)
	return &stats, nil
}

func (s *InventoryService) logRoomSaved(room domain.Room, mismatch bool, msg string) {
	evt := s.logger.Info().Str("room_id", room.ID).Str("name", room.Name.EN)
	if mismatch {
		evt = evt.Bool("amenity_mismatch", true)
	}
	evt.Msg(msg)
}

func validateRoomForm(in ports.RoomFormInput) error {
	switch {
	case strings.TrimSpace(in.NameEN) == "" || strings.TrimSpace(in.NameVN) == "":
		return fmt.Errorf("%w: name is required in both languages", domain.ErrInvalidRoomForm)
	case strings.TrimSpace(in.DescriptionEN) == "" || strings.TrimSpace(in.DescriptionVN) == "":
		return fmt.Errorf("%w: description is required in both languages", domain.ErrInvalidRoomForm)
	case strings.TrimSpace(in.ImageURL) == "":
		return fmt.Errorf("%w: image url is required", domain.ErrInvalidRoomForm)
	case in.Price <= 0:
		return fmt.Errorf("%w: price must be positive", domain.ErrInvalidRoomForm)
	case in.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidRoomForm)
	case !in.Type.Valid():
		return fmt.Errorf("%w: unknown room type %q", domain.ErrInvalidRoomForm, in.Type)
	}
	return nil
}

func roomFromForm(id string, available bool, in ports.RoomFormInput, amenities []domain.LocalizedText) domain.Room {
	return domain.Room{
		ID:          id,
		Name:        domain.LocalizedText{EN: in.NameEN, VN: in.NameVN},
		Description: domain.LocalizedText{EN: in.DescriptionEN, VN: in.DescriptionVN},
		Price:       in.Price,
		Capacity:    in.Capacity,
		ImageURL:    in.ImageURL,
		Type:        in.Type,
		Available:   available,
		Amenities:   amenities,
	}
}
