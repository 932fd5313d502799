package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func runLimited(t *testing.T, limiter *stubLimiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := RateLimit(limiter)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRateLimit_WithinBudget(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	rec, called := runLimited(t, limiter)

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got code=%d called=%v", rec.Code, called)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "192.0.2.1" {
		t.Fatalf("expected ip key, got %v", limiter.keys)
	}
}

func TestRateLimit_BudgetSpent(t *testing.T) {
	rec, called := runLimited(t, &stubLimiter{allow: false})

	if called {
		t.Fatalf("handler must not run when limited")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRateLimit_BackendFailureFailsOpen(t *testing.T) {
	rec, called := runLimited(t, &stubLimiter{err: errors.New("redis down")})

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected fail-open, got code=%d called=%v", rec.Code, called)
	}
}
