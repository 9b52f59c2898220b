package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iGEORGE17/blog-api/internal/api/metrics"
	"github.com/iGEORGE17/blog-api/internal/core/domain"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
)

// UserHandler handles profile and user administration endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the profile of the authenticated user.
//
// @Summary      Get current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.CurrentUser(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile applies a partial update to the authenticated user's profile.
//
// @Summary      Edit profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Security     BearerAuth
// @Router       /users/edit_profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.UpdateProfile(c.Request().Context(), identity, ports.ProfilePatch{
		Username: req.Username,
		Email:    req.Email,
	}); err != nil {
		return err
	}

	user, err := h.userService.CurrentUser(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers returns every registered user. Admin only.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Security     BearerAuth
// @Router       /users/admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	users, err := h.userService.ListUsers(c.Request().Context(), identity)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AccessDeniedTotal.WithLabelValues("user").Inc()
		}
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteUser removes a user by id. Admin only, and admins can never delete
// their own account.
//
// @Summary      Delete a user
// @Tags         admin
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /users/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), identity, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrSelfDeletion) {
			metrics.AccessDeniedTotal.WithLabelValues("user").Inc()
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
