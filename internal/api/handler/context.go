package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/policy"
)

// ctxActor extracts the actor identity injected by the Auth middleware and
// performs a fast-fail check before any service call: email and role must
// both be present, which proves the middleware ran on this route.
func ctxActor(c echo.Context) (policy.Actor, error) {
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)
	if email == "" || role == "" {
		return policy.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return policy.Actor{Email: email, Role: domain.Role(role)}, nil
}
