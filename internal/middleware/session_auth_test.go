package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dcampos/red-social-backend/internal/session"
)

func TestSessionAuthRejectsWithoutSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	gate := SessionAuth(store, "sesion")

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"empty value", &http.Cookie{Name: "sesion", Value: ""}},
		{"unknown token", &http.Cookie{Name: "sesion", Value: "stale-token"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/mi_perfil", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			err := gate(func(echo.Context) error {
				called = true
				return nil
			})(c)
			if err != nil {
				t.Fatalf("gate error = %v", err)
			}
			if called {
				t.Error("handler ran without a session")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if rec.Body.String() != LoginRequiredMessage {
				t.Errorf("body = %q, want %q", rec.Body.String(), LoginRequiredMessage)
			}
		})
	}
}

func TestSessionAuthAttachesIdentity(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	token, err := store.Create(context.Background(), session.Data{
		UserID: "abc123", Name: "ana", Email: "ana@x.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/mi_perfil", nil)
	req.AddCookie(&http.Cookie{Name: "sesion", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *session.Data
	err = SessionAuth(store, "sesion")(func(c echo.Context) error {
		got = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("gate error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got == nil || got.Name != "ana" || got.UserID != "abc123" {
		t.Errorf("CurrentUser() = %+v", got)
	}
}

func TestCurrentUserOnUnprotectedRoute(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Errorf("CurrentUser() = %+v, want nil", got)
	}
}

func TestNoCacheHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NoCache()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("middleware error = %v", err)
	}

	want := map[string]string{
		"Cache-Control": "no-store, no-cache, must-revalidate, private",
		"Pragma":        "no-cache",
		"Expires":       "0",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}
