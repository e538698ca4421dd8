package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/service"
	"github.com/richchoi/hotel-system/internal/infrastructure/memory"
)

func newRoomHandler() *RoomHandler {
	inventory := service.NewInventoryService(memory.NewRoomRepository(memory.SeedRooms()), zerolog.Nop())
	return NewRoomHandler(inventory)
}

const roomFormJSON = `{
	"name_en": "Harbor View Deluxe",
	"name_vn": "Phòng Deluxe Hướng Cảng",
	"description_en": "A calm room overlooking the harbor.",
	"description_vn": "Phòng yên tĩnh nhìn ra bến cảng.",
	"price": 900,
	"capacity": 2,
	"image_url": "https://picsum.photos/800/600?random=9",
	"type": "DELUXE",
	"amenities_en": "Wifi, Pool, Gym",
	"amenities_vn": "Wifi, Bể bơi"
}`

func TestRoomList(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	c, rec := request(e, http.MethodGet, "/v1/rooms", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error: %v", err)
	}

	var resp roomListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 4 || len(resp.Rooms) != 4 {
		t.Errorf("total = %d, rooms = %d, want 4", resp.Total, len(resp.Rooms))
	}
}

func TestRoomGetUnknown(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	c, _ := request(e, http.MethodGet, "/v1/rooms/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Errorf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestRoomCreateSurfacesAmenityWarning(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	c, rec := request(e, http.MethodPost, "/v1/rooms", roomFormJSON)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp roomResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Room.ID == "" || !resp.Room.Available {
		t.Errorf("room = %+v, want generated id and available=true", resp.Room)
	}
	if resp.Warning == "" {
		t.Error("asymmetric amenity lists must produce a warning")
	}
}

func TestRoomCreateValidation(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	c, _ := request(e, http.MethodPost, "/v1/rooms", `{"name_en":"X","type":"CASTLE"}`)
	if code := httpCode(t, h.Create(c)); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
}

func TestRoomUpdatePreservesAvailability(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	// Seed room 3 is stored unavailable.
	c, rec := request(e, http.MethodPut, "/v1/rooms/3", roomFormJSON)
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	var resp roomResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Room.ID != "3" || resp.Room.Available {
		t.Errorf("room = %+v, want id 3 still unavailable", resp.Room)
	}
}

func TestRoomDeleteRequiresConfirmation(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	c, _ := request(e, http.MethodDelete, "/v1/rooms/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); !errors.Is(err, domain.ErrDeleteNotConfirmed) {
		t.Errorf("err = %v, want ErrDeleteNotConfirmed", err)
	}

	c, rec := request(e, http.MethodDelete, "/v1/rooms/1?confirm=true", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("confirmed Delete() error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestRoomToggleAvailability(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	c, rec := request(e, http.MethodPost, "/v1/rooms/3/toggle", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.ToggleAvailability(c); err != nil {
		t.Fatalf("ToggleAvailability() error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestRoomStats(t *testing.T) {
	e := newEcho()
	h := newRoomHandler()

	c, rec := request(e, http.MethodGet, "/v1/stats", "")
	if err := h.Stats(c); err != nil {
		t.Fatalf("Stats() error: %v", err)
	}

	var stats domain.RoomStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	// Seed inventory: 4 rooms, room 3 (2500/night) unavailable.
	if stats.Total != 4 || stats.Booked != 1 || stats.OccupancyPct != 25 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.DailyRevenue != 2500 || stats.MonthlyRevenue != 75000 || stats.YearlyRevenue != 900000 {
		t.Errorf("revenue = %+v", stats)
	}
}
