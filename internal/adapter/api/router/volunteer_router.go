package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
	"wetlandwarden/internal/adapter/api/middleware"
)

func SetupVolunteerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	volunteerHandler := handler.GetVolunteerHandler()

	// Registration works anonymously; signed-in callers get points attached.
	e.POST("/v1/volunteers", volunteerHandler.Register, authMiddleware.OptionalAuthenticate)
	e.GET("/v1/volunteers", volunteerHandler.List)
}
