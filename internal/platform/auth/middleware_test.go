package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestMiddleware_AttachesActor(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	token, err := ti.Issue(userDirectory["admin@clinic1.com"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/queue", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(ti)(func(c echo.Context) error {
		actor := ActorFromContext(c.Request().Context())
		if actor.Username != "admin@clinic1.com" {
			t.Errorf("expected admin actor, got %q", actor.Username)
		}
		if username, _ := c.Get("session_username").(string); username != "admin@clinic1.com" {
			t.Errorf("expected session_username on echo context, got %q", username)
		}
		return c.String(http.StatusOK, "ok")
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/queue", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(ti)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/queue", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(ti)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req = req.WithContext(WithActor(req.Context(), Actor{Username: "admin@clinic1.com", Role: RoleAdmin}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequireRole(RoleAdmin)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireRole_SystemAdminBypassesCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req = req.WithContext(WithActor(req.Context(), Actor{Username: "sysadmin@mysage.com", Role: RoleSystemAdmin}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequireRole(RoleAdmin)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireRole_RejectsInsufficientRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req = req.WithContext(WithActor(req.Context(), Actor{Username: "staff@clinic1.com", Role: RoleStaff}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequireRole(RoleAdmin)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
