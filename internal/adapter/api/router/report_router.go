package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
	"wetlandwarden/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reportHandler := handler.GetReportHandler()

	protected := e.Group("/v1/reports")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", reportHandler.Submit)
	protected.GET("", reportHandler.ListMine)
}
