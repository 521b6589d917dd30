package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
	"wetlandwarden/internal/adapter/api/middleware"
)

func SetupNewsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	newsHandler := handler.GetNewsHandler()

	e.GET("/v1/news", newsHandler.List)

	protected := e.Group("/v1/news")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", newsHandler.Create)
}
