package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
)

// ctxIdentity assembles the identity injected by the Auth middleware.
// A populated user_id and role prove the middleware ran; anything else is a
// routing mistake and fails closed with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Identity{UserID: userID, Role: role}, nil
}
