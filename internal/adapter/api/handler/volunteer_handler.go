package handler

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/response"
	"wetlandwarden/pkg/utils"
)

type VolunteerHandler struct {
	volunteerUseCase *usecase.VolunteerUseCase
}

func NewVolunteerHandler(volunteerUseCase *usecase.VolunteerUseCase) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerUseCase: volunteerUseCase,
	}
}

type registerVolunteerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Expertise    string `json:"expertise" validate:"required"`
	Availability string `json:"availability" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Bio          string `json:"bio"`
}

// Register accepts both anonymous and signed-in callers; the optional auth
// middleware sets uid to "" when no token is present.
func (h *VolunteerHandler) Register(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req registerVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.volunteerUseCase.Register(c.Request().Context(), uid, usecase.RegisterVolunteerInput{
		Name:         req.Name,
		Email:        req.Email,
		Expertise:    req.Expertise,
		Availability: req.Availability,
		Location:     req.Location,
		Bio:          req.Bio,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *VolunteerHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	volunteers, total, err := h.volunteerUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, volunteers, total, params.Page, params.PageSize)
}
