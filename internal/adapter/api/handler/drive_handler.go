package handler

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/response"
	"wetlandwarden/pkg/utils"
)

type DriveHandler struct {
	driveUseCase *usecase.DriveUseCase
}

func NewDriveHandler(driveUseCase *usecase.DriveUseCase) *DriveHandler {
	return &DriveHandler{
		driveUseCase: driveUseCase,
	}
}

type createDriveRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

func (h *DriveHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createDriveRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	drive, err := h.driveUseCase.Create(c.Request().Context(), uid, usecase.CreateDriveInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, drive)
}

// List resolves the caller's joined flags when a valid token is present;
// anonymous callers see joined=false everywhere.
func (h *DriveHandler) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	drives, total, err := h.driveUseCase.List(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, drives, total, params.Page, params.PageSize)
}

func (h *DriveHandler) Join(c echo.Context) error {
	uid := c.Get("uid").(string)
	driveID := c.Param("id")

	count, err := h.driveUseCase.Join(c.Request().Context(), uid, driveID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"drive_id":     driveID,
		"participants": count,
		"joined":       true,
	})
}

func (h *DriveHandler) Leave(c echo.Context) error {
	uid := c.Get("uid").(string)
	driveID := c.Param("id")

	count, err := h.driveUseCase.Leave(c.Request().Context(), uid, driveID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"drive_id":     driveID,
		"participants": count,
		"joined":       false,
	})
}
