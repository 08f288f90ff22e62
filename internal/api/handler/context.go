package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUID extracts the uid injected by the Auth middleware. A missing uid
// means the middleware did not run for this route; fail closed with 401.
func ctxUID(c echo.Context) (string, error) {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return uid, nil
}
