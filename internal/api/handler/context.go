package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxEmail extracts the identity injected by the Auth middleware and performs
// a fast-fail check before any service call: a token without an email claim
// is structurally valid but operationally unusable.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
	}
	return email, nil
}
