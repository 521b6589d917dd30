package handler

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	return response.Success(c, h.profileUseCase.Get(c.Request().Context(), uid))
}

func (h *ProfileHandler) SetUsername(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Username string `json:"username" validate:"required,min=2,max=32"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.SetUsername(c.Request().Context(), uid, req.Username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) Activity(c echo.Context) error {
	uid := c.Get("uid").(string)

	activities, err := h.profileUseCase.Activity(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, activities)
}

func (h *ProfileHandler) Badges(c echo.Context) error {
	uid := c.Get("uid").(string)

	badges, err := h.profileUseCase.Badges(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, badges)
}
