package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bibliotech/catalog-api/internal/api/middleware"
)

// ctxUserID extracts the identity injected by the Auth middleware. An empty
// id means the middleware did not run or the token carried no subject;
// either way the request is not authenticated.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
