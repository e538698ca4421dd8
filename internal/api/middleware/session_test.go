package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

type stubSessions struct {
	user *domain.User
}

func (s *stubSessions) CurrentUser(_ context.Context) *domain.User {
	return s.user
}

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionRejectsWhenUnauthenticated(t *testing.T) {
	mw := Session(&stubSessions{})
	c, _ := newContext()

	err := mw(func(echo.Context) error {
		t.Fatal("next must not run without a session")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Errorf("err = %v, want 401", err)
	}
}

func TestSessionInjectsIdentity(t *testing.T) {
	mw := Session(&stubSessions{user: &domain.User{ID: "1", Role: domain.RoleAdmin}})
	c, _ := newContext()

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "1" || c.Get("role") != "ADMIN" {
			t.Errorf("identity = %v/%v", c.Get("user_id"), c.Get("role"))
		}
		return nil
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Error("next was not called")
	}
}

func TestRBAC(t *testing.T) {
	mw := RBAC("ADMIN")

	c, rec := newContext()
	c.Set("role", "ADMIN")
	if err := mw(func(echo.Context) error { return nil })(c); err != nil {
		t.Fatalf("allowed role errored: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	c, rec = newContext()
	c.Set("role", "GUEST")
	if err := mw(func(echo.Context) error {
		t.Fatal("next must not run for a forbidden role")
		return nil
	})(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRBACWithoutSessionContext(t *testing.T) {
	mw := RBAC("ADMIN")
	c, rec := newContext()

	if err := mw(func(echo.Context) error { return nil })(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 when no role is set", rec.Code)
	}
}
