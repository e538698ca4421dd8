package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/richchoi/hotel-system/internal/api/metrics"
	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// BookingHandler drives the checkout flow over HTTP.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// startBookingRequest opens an attempt for either a room (dates) or a
// service (time slot), never both.
type startBookingRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=room service"`
	RoomID    string `json:"room_id"`
	ServiceID string `json:"service_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	TimeSlot  string `json:"time_slot"`
}

type bookingResponse struct {
	Booking    domain.BookingAttempt `json:"booking"`
	QRPayload  string                `json:"qr_payload"`
	QRImageURL string                `json:"qr_image_url"`
}

// Start opens a checkout attempt and prices it.
//
// @Summary      Start a checkout attempt
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      startBookingRequest  true  "Booking selection"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Start(c echo.Context) error {
	var req startBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var result *ports.BookingResult
	var err error
	if req.Kind == string(domain.BookingService) {
		result, err = h.bookings.StartServiceBooking(c.Request().Context(), ports.StartServiceBookingInput{
			ServiceID: req.ServiceID,
			TimeSlot:  req.TimeSlot,
		})
	} else {
		checkIn, checkOut, perr := parseDatePair(req.CheckIn, req.CheckOut)
		if perr != nil {
			return perr
		}
		result, err = h.bookings.StartRoomBooking(c.Request().Context(), ports.StartRoomBookingInput{
			RoomID:   req.RoomID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
		})
	}
	if err != nil {
		return err
	}

	metrics.BookingsStartedTotal.WithLabelValues(string(result.Attempt.Kind)).Inc()
	return c.JSON(http.StatusCreated, toBookingResponse(result))
}

// Confirm simulates the payment and closes the attempt.
//
// @Summary      Confirm payment (simulated)
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking attempt id"
// @Success      200  {object}  bookingResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	result, err := h.bookings.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.BookingsClosedTotal.WithLabelValues(string(result.Attempt.Kind), string(result.Attempt.Status)).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(result))
}

// Cancel discards a pending attempt.
//
// @Summary      Cancel a checkout attempt
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking attempt id"
// @Success      200  {object}  bookingResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	result, err := h.bookings.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.BookingsClosedTotal.WithLabelValues(string(result.Attempt.Kind), string(result.Attempt.Status)).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(result))
}

// QRCode renders the attempt's payment payload as a PNG, a local alternative
// to the third-party image URL. Cosmetic only, not a payment rail.
//
// @Summary      Payment QR code image
// @Tags         bookings
// @Produce      png
// @Param        id  path  string  true  "Booking attempt id"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id}/qr [get]
func (h *BookingHandler) QRCode(c echo.Context) error {
	result, err := h.bookings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	png, err := qrcode.Encode(result.QRPayload, qrcode.Medium, 256)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// parseDatePair parses the form's yyyy-mm-dd date inputs. Empty strings pass
// through as zero times so the service can report missing dates uniformly.
func parseDatePair(checkIn, checkOut string) (time.Time, time.Time, error) {
	var in, out time.Time
	var err error
	if checkIn != "" {
		if in, err = time.Parse("2006-01-02", checkIn); err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "check_in must be a yyyy-mm-dd date")
		}
	}
	if checkOut != "" {
		if out, err = time.Parse("2006-01-02", checkOut); err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "check_out must be a yyyy-mm-dd date")
		}
	}
	return in, out, nil
}

func toBookingResponse(result *ports.BookingResult) bookingResponse {
	return bookingResponse{
		Booking:    result.Attempt,
		QRPayload:  result.QRPayload,
		QRImageURL: result.QRImageURL,
	}
}
