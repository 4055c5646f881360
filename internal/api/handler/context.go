package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-api/internal/api/middleware"
)

// ctxUserID returns the identity id injected by the Auth middleware. Its
// absence means the route was mounted without the middleware.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
