package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khulna-traveller/travel-api/internal/api/metrics"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

type guardResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// AdminOnly gates a route on the admin role. It assumes Session ran first;
// an absent claim is a caller-contract violation and fails closed with 401.
// The role comes from the user record, not the token, so a promotion takes
// effect on the next request without reissuing the credential.
func AdminOnly(users ports.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextEmailKey).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			isAdmin, err := users.IsAdmin(c.Request().Context(), email)
			if err != nil {
				// Storage failure surfaces as 500; never grant on error.
				return c.JSON(http.StatusInternalServerError, guardResponse{
					Error:   true,
					Message: "Internal server error.",
				})
			}
			if !isAdmin {
				metrics.AuthRejectionsTotal.WithLabelValues("not_admin").Inc()
				return c.JSON(http.StatusForbidden, guardResponse{
					Error:   true,
					Message: "Forbidden access. Admin permissions required.",
				})
			}

			return next(c)
		}
	}
}
