package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// UserHandler exposes the admin-only registry management operations.
type UserHandler struct {
	registry ports.RegistryService
}

func NewUserHandler(registry ports.RegistryService) *UserHandler {
	return &UserHandler{registry: registry}
}

type userListResponse struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
}

// List returns the full registry.
//
// @Summary      List registered users
// @Tags         users
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.registry.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users, Total: len(users)})
}

// ToggleStatus flips a user's active flag. Unknown ids are no-ops.
//
// @Summary      Toggle a user's active status
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204  "toggled (or no-op on unknown id)"
// @Failure      403  {object}  map[string]string
// @Router       /v1/users/{id}/toggle [post]
func (h *UserHandler) ToggleStatus(c echo.Context) error {
	if err := h.registry.ToggleUserStatus(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user. ADMIN records are refused with 403.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204  "deleted (or no-op on unknown id)"
// @Failure      403  {object}  map[string]string
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.registry.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
