package handler

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/response"
)

type StatisticsHandler struct {
	statisticsUseCase *usecase.StatisticsUseCase
}

func NewStatisticsHandler(statisticsUseCase *usecase.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsUseCase: statisticsUseCase,
	}
}

func (h *StatisticsHandler) Get(c echo.Context) error {
	return response.Success(c, h.statisticsUseCase.Get(c.Request().Context()))
}
