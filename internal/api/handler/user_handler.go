package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoshare/photoshare-api/internal/core/ports"
)

// UserHandler handles the protected /users routes.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Me handles GET /users/me — the caller's own public user.
func (h *UserHandler) Me(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile handles PATCH /users/me.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := callerID(c)
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

	user, err := h.userService.UpdateProfile(c.Request().Context(), id, ports.ProfileUpdate{
		Name:  req.Name,
		About: req.About,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req updateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateAvatar(c.Request().Context(), id, req.Avatar)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
