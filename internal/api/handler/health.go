package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready. All business state is
// in-memory, so the process is ready as soon as it serves; the optional
// reply-cache Redis is reported but never gates readiness.
type ReadinessHandler struct {
	redis *redis.Client // nil when the reply cache is disabled
}

func NewReadinessHandler(rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{redis: rdb}
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	deps := map[string]string{"store": "in-memory"}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx).Err(); err != nil {
			deps["reply_cache"] = "unreachable"
		} else {
			deps["reply_cache"] = "ok"
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":       "ready",
		"dependencies": deps,
	})
}
