package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
	"wetlandwarden/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	protected := e.Group("/v1/profile")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("", profileHandler.Get)
	protected.PUT("/username", profileHandler.SetUsername)
	protected.GET("/activity", profileHandler.Activity)
	protected.GET("/badges", profileHandler.Badges)
}
