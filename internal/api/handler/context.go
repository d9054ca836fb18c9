package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khulna-traveller/travel-api/internal/api/middleware"
)

// ctxEmail extracts the claim subject injected by the Session middleware.
// An empty value means the middleware did not run; that is a wiring bug on
// the route, and the request fails closed.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextEmailKey).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
