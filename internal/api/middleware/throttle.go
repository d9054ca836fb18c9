package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Limiter decides whether another attempt under key fits the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Throttle rate-limits a route per client IP. A nil limiter disables the
// check, and a limiter failure allows the request: the throttle protects
// availability and must not become an outage of its own.
func Throttle(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("throttle check failed, allowing request")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
