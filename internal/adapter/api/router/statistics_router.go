package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
)

func SetupStatisticsRouter(e *echo.Echo) {
	statisticsHandler := handler.GetStatisticsHandler()

	e.GET("/v1/statistics", statisticsHandler.Get)
}
