package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// BookingService drives checkout attempts through the selection → payment →
// terminal state machine. Attempts are ephemeral and leave no trace on the
// room, service, or user collections.
type BookingService struct {
	rooms    ports.RoomRepository
	services ports.ServiceRepository
	attempts ports.BookingRepository
	logger   zerolog.Logger
}

func NewBookingService(
	rooms ports.RoomRepository,
	services ports.ServiceRepository,
	attempts ports.BookingRepository,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{rooms: rooms, services: services, attempts: attempts, logger: logger}
}

// StartRoomBooking validates the date range, prices the stay, and opens an
// attempt in awaiting_payment. Inverted or missing dates are rejected before
// any state is created.
func (s *BookingService) StartRoomBooking(ctx context.Context, input ports.StartRoomBookingInput) (*ports.BookingResult, error) {
	room, err := s.rooms.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Available {
		return nil, domain.ErrRoomUnavailable
	}

	nights, err := domain.Nights(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	attempt := &domain.BookingAttempt{
		ID:       uuid.NewString(),
		Kind:     domain.BookingRoom,
		TargetID: room.ID,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Nights:   nights,
		Total:    domain.RoomTotal(nights, room.Price),
		Status:   domain.BookingAwaitingPayment,
		Created:  time.Now().UTC(),
	}
	if err := s.attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", attempt.ID).
		Str("room_id", room.ID).
		Int("nights", nights).
		Float64("total", attempt.Total).
		Msg("room checkout opened")

	return result(attempt), nil
}

// StartServiceBooking opens a service attempt. The slot is required but does
// not multiply: services charge their flat price, zero meaning complimentary.
func (s *BookingService) StartServiceBooking(ctx context.Context, input ports.StartServiceBookingInput) (*ports.BookingResult, error) {
	if strings.TrimSpace(input.TimeSlot) == "" {
		return nil, domain.ErrMissingSlot
	}

	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	attempt := &domain.BookingAttempt{
		ID:       uuid.NewString(),
		Kind:     domain.BookingService,
		TargetID: svc.ID,
		TimeSlot: input.TimeSlot,
		Total:    svc.Price,
		Status:   domain.BookingAwaitingPayment,
		Created:  time.Now().UTC(),
	}
	if err := s.attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", attempt.ID).
		Str("service_id", svc.ID).
		Str("slot", input.TimeSlot).
		Float64("total", attempt.Total).
		Msg("service checkout opened")

	return result(attempt), nil
}

// Confirm simulates the payment: the attempt becomes confirmed and is
// discarded. No external verification of funds takes place.
func (s *BookingService) Confirm(ctx context.Context, id string) (*ports.BookingResult, error) {
	return s.finish(ctx, id, domain.BookingConfirmed)
}

// Cancel discards a pending attempt, returning the flow to its initial state.
func (s *BookingService) Cancel(ctx context.Context, id string) (*ports.BookingResult, error) {
	return s.finish(ctx, id, domain.BookingCancelled)
}

func (s *BookingService) Get(ctx context.Context, id string) (*ports.BookingResult, error) {
	attempt, err := s.attempts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return result(attempt), nil
}

func (s *BookingService) finish(ctx context.Context, id string, next domain.BookingStatus) (*ports.BookingResult, error) {
	attempt, err := s.attempts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !attempt.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, attempt.Status, next)
	}

	attempt.Status = next
	if err := s.attempts.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", attempt.ID).
		Str("kind", string(attempt.Kind)).
		Str("status", string(next)).
		Msg("checkout closed")

	return result(attempt), nil
}

func result(attempt *domain.BookingAttempt) *ports.BookingResult {
	return &ports.BookingResult{
		Attempt:    *attempt,
		QRPayload:  attempt.QRPayload(),
		QRImageURL: attempt.QRImageURL(),
	}
}
