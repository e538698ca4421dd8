package ports

import (
	"context"
	"time"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// StartRoomBookingInput opens a room checkout attempt.
type StartRoomBookingInput struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
}

// StartServiceBookingInput opens a service checkout attempt.
type StartServiceBookingInput struct {
	ServiceID string
	TimeSlot  string
}

// BookingResult is the view returned for every checkout operation.
type BookingResult struct {
	Attempt    domain.BookingAttempt
	QRPayload  string
	QRImageURL string
}

// BookingService drives the linear checkout state machine. Confirmation is
// purely simulated; neither rooms nor users are mutated by any outcome.
type BookingService interface {
	StartRoomBooking(ctx context.Context, input StartRoomBookingInput) (*BookingResult, error)
	StartServiceBooking(ctx context.Context, input StartServiceBookingInput) (*BookingResult, error)
	// Confirm moves awaiting_payment to confirmed and discards the attempt.
	Confirm(ctx context.Context, id string) (*BookingResult, error)
	// Cancel moves awaiting_payment to cancelled and discards the attempt.
	Cancel(ctx context.Context, id string) (*BookingResult, error)
	// Get returns an in-flight attempt by id.
	Get(ctx context.Context, id string) (*BookingResult, error)
}
