package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planisoins/planning-api/internal/core/ports"
)

// ctxActor extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: an empty role or id
// means the middleware did not run, or the token carries no usable
// identity — reject with 401 rather than passing a hollow actor downstream.
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	id, _ := c.Get("user_id").(string)
	if role == "" || id == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return ports.Actor{ID: id, Username: username, Role: role}, nil
}
