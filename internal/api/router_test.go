package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/service"
	"github.com/richchoi/hotel-system/internal/infrastructure/memory"
)

type offlineGenerationClient struct{}

func (offlineGenerationClient) GenerateContent(_ context.Context, _, _ string) (string, error) {
	return "", service.ErrNoCredential
}

func newTestRouter() *echo.Echo {
	log := zerolog.Nop()
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	roomRepo := memory.NewRoomRepository(memory.SeedRooms())
	serviceRepo := memory.NewServiceRepository(memory.SeedServices())
	partnerRepo := memory.NewPartnerRepository(memory.SeedPartners())
	bookingRepo := memory.NewBookingRepository()

	return NewRouter(Deps{
		Registry:  service.NewRegistryService(userRepo, log),
		Inventory: service.NewInventoryService(roomRepo, log),
		Bookings:  service.NewBookingService(roomRepo, serviceRepo, bookingRepo, log),
		Concierge: service.NewConciergeService(offlineGenerationClient{}, roomRepo, serviceRepo, nil, log),
		Services:  serviceRepo,
		Partners:  partnerRepo,
		Logger:    log,
	})
}

// TestRouter walks the wired HTTP surface end to end. Subtests share one
// router because the prometheus middleware registers global collectors.
func TestRouter(t *testing.T) {
	e := newTestRouter()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var reader *strings.Reader
		if body == "" {
			reader = strings.NewReader("")
		} else {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != "" {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("liveness", func(t *testing.T) {
		if rec := do(http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
			t.Errorf("code = %d", rec.Code)
		}
	})

	t.Run("readiness without redis", func(t *testing.T) {
		rec := do(http.MethodGet, "/health/ready", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "in-memory") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("public room catalog", func(t *testing.T) {
		rec := do(http.MethodGet, "/v1/rooms", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d", rec.Code)
		}
		var resp struct {
			Total int `json:"total"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Total != 4 {
			t.Errorf("total = %d, want 4", resp.Total)
		}
	})

	t.Run("admin routes require a session", func(t *testing.T) {
		if rec := do(http.MethodGet, "/v1/stats", ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})

	t.Run("guest session is not enough", func(t *testing.T) {
		if rec := do(http.MethodPost, "/auth/login", `{"role":"GUEST"}`); rec.Code != http.StatusOK {
			t.Fatalf("login code = %d", rec.Code)
		}
		if rec := do(http.MethodGet, "/v1/stats", ""); rec.Code != http.StatusForbidden {
			t.Errorf("code = %d, want 403", rec.Code)
		}
	})

	t.Run("admin console", func(t *testing.T) {
		if rec := do(http.MethodPost, "/auth/login", `{"role":"ADMIN"}`); rec.Code != http.StatusOK {
			t.Fatalf("login code = %d", rec.Code)
		}
		if rec := do(http.MethodGet, "/v1/stats", ""); rec.Code != http.StatusOK {
			t.Errorf("stats code = %d, want 200", rec.Code)
		}
		if rec := do(http.MethodDelete, "/v1/users/1", ""); rec.Code != http.StatusForbidden {
			t.Errorf("admin delete code = %d, want 403", rec.Code)
		}
		if rec := do(http.MethodDelete, "/v1/rooms/1", ""); rec.Code != http.StatusBadRequest {
			t.Errorf("unconfirmed room delete code = %d, want 400", rec.Code)
		}
	})

	t.Run("checkout flow", func(t *testing.T) {
		rec := do(http.MethodPost, "/v1/bookings",
			`{"kind":"room","room_id":"2","check_in":"2024-06-01","check_out":"2024-06-04"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("start code = %d: %s", rec.Code, rec.Body.String())
		}
		var created struct {
			Booking struct {
				ID string `json:"id"`
			} `json:"booking"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatal(err)
		}

		if rec := do(http.MethodPost, "/v1/bookings/"+created.Booking.ID+"/confirm", ""); rec.Code != http.StatusOK {
			t.Errorf("confirm code = %d", rec.Code)
		}
		// Terminal attempts are discarded.
		if rec := do(http.MethodPost, "/v1/bookings/"+created.Booking.ID+"/cancel", ""); rec.Code != http.StatusNotFound {
			t.Errorf("cancel after confirm code = %d, want 404", rec.Code)
		}
	})

	t.Run("concierge degrades in character", func(t *testing.T) {
		rec := do(http.MethodPost, "/v1/chat", `{"message":"Hello"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "currently offline") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("unknown booking qr", func(t *testing.T) {
		if rec := do(http.MethodGet, "/v1/bookings/missing/qr", ""); rec.Code != http.StatusNotFound {
			t.Errorf("code = %d, want 404", rec.Code)
		}
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		rec := do(http.MethodGet, "/metrics", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "richchoi") {
			t.Error("namespaced metrics missing")
		}
	})
}
