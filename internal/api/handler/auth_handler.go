package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// AuthHandler exposes the mock session operations: demo role login,
// guest self-registration, logout, and session introspection.
type AuthHandler struct {
	registry ports.RegistryService
}

func NewAuthHandler(registry ports.RegistryService) *AuthHandler {
	return &AuthHandler{registry: registry}
}

type loginRequest struct {
	Role string `json:"role" validate:"required,oneof=GUEST ADMIN"`
}

type registerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type sessionResponse struct {
	User *domain.User `json:"user"`
}

// Login opens the demo session for a role.
//
// @Summary      Login as a role (demo)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Role to log in as"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := h.registry.Login(c.Request().Context(), domain.Role(req.Role))
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}

// Register creates a GUEST account and auto-logs it in.
//
// @Summary      Register a new guest
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.registry.Register(c.Request().Context(), ports.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{User: user})
}

// Logout clears the session.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.registry.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session user.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.registry.CurrentUser(c.Request().Context())
	if user == nil {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}
