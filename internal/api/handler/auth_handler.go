package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khulna-traveller/travel-api/internal/api/metrics"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

// AuthHandler issues and clears session credentials. There is no password
// check here: the submitted identity is attested upstream, and this service
// only mints its own session token for it.
type AuthHandler struct {
	codec ports.TokenCodec
	ttl   time.Duration
}

func NewAuthHandler(codec ports.TokenCodec, ttl time.Duration) *AuthHandler {
	return &AuthHandler{codec: codec, ttl: ttl}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type sessionResponse struct {
	Success bool `json:"success"`
}

// Login mints a session token and stores it in the token cookie.
//
// @Summary      Issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Subject identity"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.codec.Issue(req.Email)
	if err != nil {
		return err
	}

	c.SetCookie(newSessionCookie(token, h.ttl))
	metrics.LoginsTotal.Inc()
	return c.JSON(http.StatusOK, sessionResponse{Success: true})
}

// Logout clears the session cookie. Idempotent; always succeeds.
//
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(clearedSessionCookie())
	return c.JSON(http.StatusOK, sessionResponse{Success: true})
}
