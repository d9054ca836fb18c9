package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_UnauthorizedUsesMessageKey(t *testing.T) {
	for name, err := range map[string]error{
		"middleware": echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access token"),
		"expired":    domain.ErrTokenExpired,
		"invalid":    domain.ErrTokenInvalid,
	} {
		rec := renderError(t, err)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"message":"unauthorized access token"`) {
			t.Fatalf("%s: expected message envelope, got %s", name, rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), `"error"`) {
			t.Fatalf("%s: 401 body must not carry an error key, got %s", name, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_InvalidID(t *testing.T) {
	rec := renderError(t, domain.ErrInvalidID)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"invalid id"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_UnexpectedErrorStaysGeneric(t *testing.T) {
	rec := renderError(t, errors.New("dial tcp: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"internal server error"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("internal detail leaked to the client: %s", rec.Body.String())
	}
}
