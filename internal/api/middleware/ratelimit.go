package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoshare/photoshare-api/internal/api/metrics"
)

// Allower is the slice of the Redis limiter the middleware needs.
type Allower interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// RateLimit rejects requests with 429 once a client's window budget is spent.
// Clients are keyed by originating IP. A limiter backend failure fails open.
func RateLimit(limiter Allower) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
