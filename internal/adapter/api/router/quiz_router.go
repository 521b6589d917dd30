package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
	"wetlandwarden/internal/adapter/api/middleware"
)

func SetupQuizRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	quizHandler := handler.GetQuizHandler()

	// Public routes
	e.GET("/v1/quizzes", quizHandler.List)

	// Protected routes
	protected := e.Group("/v1/quizzes")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/:id/questions", quizHandler.Questions)
	protected.POST("/:id/start", quizHandler.Start)
	protected.POST("/:id/answer", quizHandler.Answer)
	protected.POST("/:id/restart", quizHandler.Restart)
	protected.DELETE("/:id/session", quizHandler.Exit)
}
