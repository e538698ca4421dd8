package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/richchoi/hotel-system/internal/api/metrics"
	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// RoomHandler exposes the public room catalog and the admin inventory
// management operations.
type RoomHandler struct {
	inventory ports.InventoryService
}

func NewRoomHandler(inventory ports.InventoryService) *RoomHandler {
	return &RoomHandler{inventory: inventory}
}

// roomFormRequest mirrors the admin room form, amenities as two free-text
// comma-separated lists.
type roomFormRequest struct {
	NameEN        string  `json:"name_en" validate:"required"`
	NameVN        string  `json:"name_vn" validate:"required"`
	DescriptionEN string  `json:"description_en" validate:"required"`
	DescriptionVN string  `json:"description_vn" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Capacity      int     `json:"capacity" validate:"required,gt=0"`
	ImageURL      string  `json:"image_url" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=DELUXE SUITE PRESIDENTIAL"`
	AmenitiesEN   string  `json:"amenities_en"`
	AmenitiesVN   string  `json:"amenities_vn"`
}

type roomResponse struct {
	Room domain.Room `json:"room"`
	// Warning is set when the EN/VN amenity lists differed in length.
	Warning string `json:"warning,omitempty"`
}

type roomListResponse struct {
	Rooms []domain.Room `json:"rooms"`
	Total int           `json:"total"`
}

const amenityMismatchWarning = "amenity lists have different lengths; missing Vietnamese entries fall back to English and extra ones were dropped"

// List returns the room catalog.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  roomListResponse
// @Router       /v1/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.inventory.ListRooms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomListResponse{Rooms: rooms, Total: len(rooms)})
}

// Get returns a single room.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id  path  string  true  "Room id"
// @Success      200  {object}  roomResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.inventory.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomResponse{Room: *room})
}

// Create adds a room to the inventory.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      roomFormRequest  true  "Room form"
// @Success      201   {object}  roomResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	input, err := h.bindForm(c)
	if err != nil {
		return err
	}

	result, err := h.inventory.CreateRoom(c.Request().Context(), *input)
	if err != nil {
		return err
	}

	metrics.RoomsManagedTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, roomResult(result))
}

// Update replaces a room's fields, preserving id and availability.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Room id"
// @Param        body  body      roomFormRequest  true  "Room form"
// @Success      200   {object}  roomResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	input, err := h.bindForm(c)
	if err != nil {
		return err
	}

	result, err := h.inventory.UpdateRoom(c.Request().Context(), c.Param("id"), *input)
	if err != nil {
		return err
	}

	metrics.RoomsManagedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, roomResult(result))
}

// Delete removes a room after explicit confirmation (?confirm=true).
//
// @Summary      Delete a room
// @Tags         rooms
// @Param        id       path   string  true  "Room id"
// @Param        confirm  query  bool    true  "Must be true to proceed"
// @Success      204  "deleted (or no-op on unknown id)"
// @Failure      400  {object}  map[string]string
// @Router       /v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"
	if err := h.inventory.DeleteRoom(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return err
	}
	metrics.RoomsManagedTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ToggleAvailability flips the available flag. Unknown ids are no-ops.
//
// @Summary      Toggle room availability
// @Tags         rooms
// @Param        id  path  string  true  "Room id"
// @Success      204  "toggled (or no-op on unknown id)"
// @Router       /v1/rooms/{id}/toggle [post]
func (h *RoomHandler) ToggleAvailability(c echo.Context) error {
	if err := h.inventory.ToggleAvailability(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RoomsManagedTotal.WithLabelValues("toggle").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats returns the derived inventory statistics.
//
// @Summary      Inventory statistics
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  domain.RoomStats
// @Failure      403  {object}  map[string]string
// @Router       /v1/stats [get]
func (h *RoomHandler) Stats(c echo.Context) error {
	stats, err := h.inventory.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *RoomHandler) bindForm(c echo.Context) (*ports.RoomFormInput, error) {
	var req roomFormRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &ports.RoomFormInput{
		NameEN:        req.NameEN,
		NameVN:        req.NameVN,
		DescriptionEN: req.DescriptionEN,
		DescriptionVN: req.DescriptionVN,
		Price:         req.Price,
		Capacity:      req.Capacity,
		ImageURL:      req.ImageURL,
		Type:          domain.RoomType(req.Type),
		AmenitiesEN:   req.AmenitiesEN,
		AmenitiesVN:   req.AmenitiesVN,
	}, nil
}

func roomResult(result *ports.RoomResult) roomResponse {
	resp := roomResponse{Room: result.Room}
	if result.AmenityMismatch {
		resp.Warning = amenityMismatchWarning
	}
	return resp
}
