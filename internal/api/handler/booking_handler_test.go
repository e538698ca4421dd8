package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
	"github.com/richchoi/hotel-system/internal/core/service"
	"github.com/richchoi/hotel-system/internal/infrastructure/memory"
)

func newBookingHandler() (*BookingHandler, *service.BookingService) {
	svc := service.NewBookingService(
		memory.NewRoomRepository(memory.SeedRooms()),
		memory.NewServiceRepository(memory.SeedServices()),
		memory.NewBookingRepository(),
		zerolog.Nop(),
	)
	return NewBookingHandler(svc), svc
}

func TestBookingStartRoom(t *testing.T) {
	e := newEcho()
	h, _ := newBookingHandler()

	c, rec := request(e, http.MethodPost, "/v1/bookings",
		`{"kind":"room","room_id":"2","check_in":"2024-06-01","check_out":"2024-06-04"}`)
	if err := h.Start(c); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp bookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Booking.Nights != 3 || resp.Booking.Total != 3600 {
		t.Errorf("booking = %+v, want 3 nights at 1200", resp.Booking)
	}
	if resp.QRPayload != "RICHCHOI_BOOK_2_3600" {
		t.Errorf("qr payload = %q", resp.QRPayload)
	}
	if resp.QRImageURL == "" {
		t.Error("qr image url missing")
	}
}

func TestBookingStartService(t *testing.T) {
	e := newEcho()
	h, _ := newBookingHandler()

	c, rec := request(e, http.MethodPost, "/v1/bookings",
		`{"kind":"service","service_id":"s1","time_slot":"14:00"}`)
	if err := h.Start(c); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp bookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Booking.Total != 200 || resp.Booking.TimeSlot != "14:00" {
		t.Errorf("booking = %+v", resp.Booking)
	}
}

func TestBookingStartRejections(t *testing.T) {
	e := newEcho()
	h, _ := newBookingHandler()

	c, _ := request(e, http.MethodPost, "/v1/bookings", `{"kind":"flight"}`)
	if code := httpCode(t, h.Start(c)); code != http.StatusBadRequest {
		t.Errorf("unknown kind: code = %d, want 400", code)
	}

	c, _ = request(e, http.MethodPost, "/v1/bookings",
		`{"kind":"room","room_id":"2","check_in":"June 1st","check_out":"2024-06-04"}`)
	if code := httpCode(t, h.Start(c)); code != http.StatusBadRequest {
		t.Errorf("bad date: code = %d, want 400", code)
	}

	c, _ = request(e, http.MethodPost, "/v1/bookings",
		`{"kind":"room","room_id":"2","check_in":"2024-06-04","check_out":"2024-06-01"}`)
	if err := h.Start(c); !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Errorf("inverted range: err = %v, want ErrInvalidDateRange", err)
	}
}

func TestBookingConfirm(t *testing.T) {
	e := newEcho()
	h, svc := newBookingHandler()

	opened, err := svc.StartServiceBooking(context.Background(), ports.StartServiceBookingInput{ServiceID: "s1", TimeSlot: "14:00"})
	if err != nil {
		t.Fatal(err)
	}

	c, rec := request(e, http.MethodPost, "/v1/bookings/"+opened.Attempt.ID+"/confirm", "")
	c.SetParamNames("id")
	c.SetParamValues(opened.Attempt.ID)
	if err := h.Confirm(c); err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}

	var resp bookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Booking.Status != domain.BookingConfirmed {
		t.Errorf("status = %s, want confirmed", resp.Booking.Status)
	}
}

func TestBookingQRCode(t *testing.T) {
	e := newEcho()
	h, svc := newBookingHandler()

	opened, err := svc.StartServiceBooking(context.Background(), ports.StartServiceBookingInput{ServiceID: "s1", TimeSlot: "14:00"})
	if err != nil {
		t.Fatal(err)
	}

	c, rec := request(e, http.MethodGet, "/v1/bookings/"+opened.Attempt.ID+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(opened.Attempt.ID)
	if err := h.QRCode(c); err != nil {
		t.Fatalf("QRCode() error: %v", err)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "image/png" {
		t.Errorf("content type = %q, want image/png", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty png body")
	}
}

func TestBookingQRCodeUnknown(t *testing.T) {
	e := newEcho()
	h, _ := newBookingHandler()

	c, _ := request(e, http.MethodGet, "/v1/bookings/missing/qr", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.QRCode(c); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("err = %v, want ErrBookingNotFound", err)
	}
}
