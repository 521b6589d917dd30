package handler

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/response"
)

type MapHandler struct {
	mapUseCase *usecase.MapUseCase
}

func NewMapHandler(mapUseCase *usecase.MapUseCase) *MapHandler {
	return &MapHandler{
		mapUseCase: mapUseCase,
	}
}

func (h *MapHandler) Sites(c echo.Context) error {
	return response.Success(c, h.mapUseCase.Sites())
}

func (h *MapHandler) Site(c echo.Context) error {
	site, err := h.mapUseCase.Site(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, site)
}
