package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelhub/booking-system/internal/api/middleware"
	"github.com/travelhub/booking-system/internal/core/domain"
)

// ctxClaims rebuilds the claim set injected by the Auth middleware. The
// subject must be present (its presence proves the middleware ran); the
// role may legitimately be empty and is judged later by the guard.
func ctxClaims(c echo.Context) (domain.ClaimSet, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	if email == "" {
		return domain.ClaimSet{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get(middleware.ContextKeyRole).(string)
	return domain.ClaimSet{Subject: email, Role: domain.Role(role)}, nil
}
