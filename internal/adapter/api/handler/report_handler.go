package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/response"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

// Submit reads a multipart form: text fields plus an optional "image" part.
func (h *ReportHandler) Submit(c echo.Context) error {
	uid := c.Get("uid").(string)

	input := usecase.SubmitReportInput{
		Description:     c.FormValue("description"),
		Location:        c.FormValue("location"),
		Pollution:       formBool(c, "pollution"),
		InvasiveSpecies: formBool(c, "invasive_species"),
		Drainage:        formBool(c, "drainage"),
		Illegal:         formBool(c, "illegal_activity"),
		Development:     formBool(c, "development"),
	}

	fileHeader, err := c.FormFile("image")
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read uploaded image", err))
		}
		defer file.Close()

		input.Image = file
		input.ImageType = fileHeader.Header.Get("Content-Type")
	}

	result, err := h.reportUseCase.Submit(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ReportHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	reports, err := h.reportUseCase.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}

func formBool(c echo.Context, field string) bool {
	value, _ := strconv.ParseBool(c.FormValue(field))
	return value
}
