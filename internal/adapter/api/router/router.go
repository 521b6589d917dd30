package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupVolunteerRouter(e, authMiddleware)
	SetupDriveRouter(e, authMiddleware)
	SetupReportRouter(e, authMiddleware)
	SetupQuizRouter(e, authMiddleware)
	SetupNewsRouter(e, authMiddleware)
	SetupStatisticsRouter(e)
	SetupMapRouter(e)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
