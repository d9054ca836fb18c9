package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khulna-traveller/travel-api/internal/api/metrics"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

const (
	// CookieName is the credential-storage slot on the client.
	CookieName = "token"
	// ContextEmailKey is where the verified claim subject lands in the
	// echo context for downstream handlers.
	ContextEmailKey = "email"
)

const unauthorizedMessage = "unauthorized access token"

// Session extracts the session token from the request cookie, verifies it,
// and injects the claim email into context. Missing and invalid tokens get
// the same 401 body so the response never reveals which check failed.
func Session(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_cookie").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			c.Set(ContextEmailKey, claims.Email)
			return next(c)
		}
	}
}
