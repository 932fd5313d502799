package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// callerID extracts the user id injected by the Auth middleware. Its absence
// means the middleware never ran for this route; fail closed with 401.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
