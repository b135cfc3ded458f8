package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelhub/booking-system/internal/core/domain"
)

// RequireRole gates a route on the caller's role claim. The decision is
// delegated to the domain guard; a missing role claim is an ordinary
// denial, not an error. Denials are 403 with the fixed admin message.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextKeyEmail).(string)
			role, _ := c.Get(ContextKeyRole).(string)

			claims := domain.ClaimSet{Subject: email, Role: domain.Role(role)}
			if decision := domain.Authorize(claims, required); !decision.Allowed {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied. Admins only."})
			}
			return next(c)
		}
	}
}
