package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/door2door/taskmarket-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the caller's own profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Update handles PUT /v1/profile.
//
// @Summary      Update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Update(c.Request().Context(), email, req.Name, req.Phone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// Get handles GET /v1/profile.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(user))
}
