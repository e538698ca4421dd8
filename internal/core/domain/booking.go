package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// BookingStatus is the lifecycle state of a checkout attempt.
type BookingStatus string

const (
	BookingSelecting       BookingStatus = "selecting"
	BookingAwaitingPayment BookingStatus = "awaiting_payment"
	BookingConfirmed       BookingStatus = "confirmed"
	BookingCancelled       BookingStatus = "cancelled"
)

// validBookingTransitions defines the allowed checkout state machine moves.
// Cancellation is only reachable while payment is pending.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingSelecting:       {BookingAwaitingPayment},
	BookingAwaitingPayment: {BookingConfirmed, BookingCancelled},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingKind distinguishes a room-night reservation from a service slot.
type BookingKind string

const (
	BookingRoom    BookingKind = "room"
	BookingService BookingKind = "service"
)

var (
	ErrBookingNotFound    = errors.New("booking attempt not found")
	ErrInvalidTransition  = errors.New("invalid booking transition")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrMissingDates       = errors.New("check-in and check-out dates are required")
	ErrMissingSlot        = errors.New("a time slot is required")
	ErrRoomUnavailable    = errors.New("room is not available")
)

// BookingAttempt is an ephemeral checkout record. It is never persisted and
// never written back to the room or user collections: confirming a booking
// does not mark a room unavailable.
type BookingAttempt struct {
	ID       string        `json:"id"`
	Kind     BookingKind   `json:"kind"`
	TargetID string        `json:"target_id"`
	CheckIn  time.Time     `json:"check_in,omitempty"`
	CheckOut time.Time     `json:"check_out,omitempty"`
	TimeSlot string        `json:"time_slot,omitempty"`
	Nights   int           `json:"nights,omitempty"`
	Total    float64       `json:"total"`
	Status   BookingStatus `json:"status"`
	Created  time.Time     `json:"created_at"`
}

const qrPrefix = "RICHCHOI"

// QRPayload builds the deterministic string embedded in the payment QR code.
// It is a display affordance only and carries no settlement semantics.
func (b *BookingAttempt) QRPayload() string {
	switch b.Kind {
	case BookingService:
		return fmt.Sprintf("%s_SVC_%s_%s", qrPrefix, b.TargetID, b.TimeSlot)
	default:
		return fmt.Sprintf("%s_BOOK_%s_%s", qrPrefix, b.TargetID, strconv.FormatFloat(b.Total, 'f', -1, 64))
	}
}

// QRImageURL returns the third-party renderer URL the original front end
// embeds as an <img> source. Non-authoritative.
func (b *BookingAttempt) QRImageURL() string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=" + url.QueryEscape(b.QRPayload())
}
