package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/richchoi/hotel-system/internal/api/metrics"
	"github.com/richchoi/hotel-system/internal/core/ports"
	"github.com/richchoi/hotel-system/internal/core/service"
)

// ChatHandler exposes the AI concierge relay.
type ChatHandler struct {
	concierge ports.ConciergeService
}

func NewChatHandler(concierge ports.ConciergeService) *ChatHandler {
	return &ChatHandler{concierge: concierge}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Send relays a guest message and returns the concierge reply. The endpoint
// always answers 200: relay failures surface as in-character apologies.
//
// @Summary      Ask the AI concierge
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Guest message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	reply := h.concierge.Reply(c.Request().Context(), req.Message)
	metrics.ConciergeDuration.Observe(time.Since(start).Seconds())
	metrics.ConciergeRequestsTotal.WithLabelValues(outcomeLabel(reply)).Inc()

	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

// outcomeLabel classifies a reply for metrics by matching the fixed fallback
// strings the concierge emits.
func outcomeLabel(reply string) string {
	switch reply {
	case service.ApologyOffline:
		return "offline"
	case service.ApologyBusy:
		return "busy"
	case service.ApologyUnclear:
		return "unclear"
	default:
		return "reply"
	}
}
