package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lenslease/marketplace-api/internal/core/domain"
)

// RBAC enforces role-based access control. The role mismatch answer is
// distinct from the unauthenticated one: a logged-in actor with the wrong
// role gets 403, while Auth already rejected anonymous callers with 401.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "unauthorized access"})
			}
			return next(c)
		}
	}
}
