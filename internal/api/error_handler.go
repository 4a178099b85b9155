package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// carries the full list of violated fields on validation failures.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures with the complete field message list.
//   - Logs unexpected errors internally; the client sees a generic message
//     unless the process runs in development mode.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c, development)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Validation failures carry every violated field.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: "validation failed", Details: ve.Fields}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, errorResponse{Error: "email already in use"}
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, errorResponse{Error: "role must be user or admin"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrBadPassword):
		return http.StatusBadRequest, errorResponse{Error: "incorrect password"}
	case errors.Is(err, domain.ErrBookNotFound):
		return http.StatusNotFound, errorResponse{Error: "book not found"}
	case errors.Is(err, domain.ErrInvalidBookID):
		return http.StatusBadRequest, errorResponse{Error: "invalid book id"}
	case errors.Is(err, domain.ErrUnsupportedImage):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	resp := errorResponse{Error: "internal server error"}
	if development {
		resp.Details = []string{err.Error()}
	}
	return http.StatusInternalServerError, resp
}
