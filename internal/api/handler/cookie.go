package handler

import (
	"net/http"
	"time"

	"github.com/khulna-traveller/travel-api/internal/api/middleware"
)

// newSessionCookie wraps a signed token for transport. The attributes match
// what the browser client requires for a cross-site cookie: httpOnly, secure,
// SameSite=None.
func newSessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// clearedSessionCookie invalidates the stored credential on the client.
func clearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
