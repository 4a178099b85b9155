package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

func render(t *testing.T, err error, development bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), development)(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrBadPassword, http.StatusBadRequest},
		{domain.ErrBookNotFound, http.StatusNotFound},
		{domain.ErrInvalidBookID, http.StatusBadRequest},
		{domain.ErrUnsupportedImage, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec, _ := render(t, tc.err, false)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	err := domain.NewValidationError("title is required", "author is required")
	rec, body := render(t, err, false)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) != 2 {
		t.Fatalf("expected 2 detail messages, got %v", body["details"])
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetail(t *testing.T) {
	rec, body := render(t, errors.New("mongo: connection reset"), false)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body["error"])
	}
	if _, present := body["details"]; present {
		t.Fatalf("details should be absent outside development")
	}
}

func TestErrorHandler_DevelopmentIncludesDetail(t *testing.T) {
	_, body := render(t, errors.New("mongo: connection reset"), true)

	details, ok := body["details"].([]any)
	if !ok || len(details) != 1 || details[0] != "mongo: connection reset" {
		t.Fatalf("expected underlying error in development, got %v", body["details"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token"), false)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "invalid or expired token" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}
