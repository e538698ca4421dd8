package domain

import (
	"errors"
	"math"
)

// RoomType is the marketing tier of a room.
type RoomType string

const (
	RoomDeluxe       RoomType = "DELUXE"
	RoomSuite        RoomType = "SUITE"
	RoomPresidential RoomType = "PRESIDENTIAL"
)

// Valid reports whether t is a known room tier.
func (t RoomType) Valid() bool {
	return t == RoomDeluxe || t == RoomSuite || t == RoomPresidential
}

var (
	ErrRoomNotFound = errors.New("room not found")
	// ErrInvalidRoomForm wraps a human-readable description of which room
	// form field failed validation.
	ErrInvalidRoomForm = errors.New("invalid room form")
	// ErrDeleteNotConfirmed guards room deletion behind an explicit
	// confirmation step.
	ErrDeleteNotConfirmed = errors.New("room deletion requires confirmation")
)

// Room is an inventory entry. Price is in currency units per night.
// Available=false means the room counts as booked in the derived stats.
type Room struct {
	ID          string          `json:"id"`
	Name        LocalizedText   `json:"name"`
	Description LocalizedText   `json:"description"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	ImageURL    string          `json:"image_url"`
	Type        RoomType        `json:"type"`
	Available   bool            `json:"available"`
	Amenities   []LocalizedText `json:"amenities"`
}

// RoomStats are simulation placeholders derived from the current inventory,
// not real revenue accounting. Recomputed on every read, never cached.
type RoomStats struct {
	Total          int     `json:"total"`
	Booked         int     `json:"booked"`
	Available      int     `json:"available"`
	OccupancyPct   int     `json:"occupancy_pct"`
	DailyRevenue   float64 `json:"daily_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	YearlyRevenue  float64 `json:"yearly_revenue"`
}

// ComputeRoomStats derives occupancy and projected revenue from the room
// collection. A room is booked when it is not available; monthly and yearly
// figures are flat projections of the daily sum.
func ComputeRoomStats(rooms []Room) RoomStats {
	var s RoomStats
	s.Total = len(rooms)
	for _, r := range rooms {
		if !r.Available {
			s.Booked++
			s.DailyRevenue += r.Price
		}
	}
	s.Available = s.Total - s.Booked
	if s.Total > 0 {
		s.OccupancyPct = int(math.Round(float64(s.Booked) / float64(s.Total) * 100))
	}
	s.MonthlyRevenue = s.DailyRevenue * 30
	s.YearlyRevenue = s.MonthlyRevenue * 12
	return s
}
