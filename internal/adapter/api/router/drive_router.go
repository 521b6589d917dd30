package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
	"wetlandwarden/internal/adapter/api/middleware"
)

func SetupDriveRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	driveHandler := handler.GetDriveHandler()

	// Listing works anonymously; a token resolves the caller's joined flags.
	e.GET("/v1/drives", driveHandler.List, authMiddleware.OptionalAuthenticate)

	protected := e.Group("/v1/drives")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", driveHandler.Create)
	protected.POST("/:id/join", driveHandler.Join)
	protected.DELETE("/:id/join", driveHandler.Leave)
}
