package router

import (
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/adapter/api/handler"
)

func SetupMapRouter(e *echo.Echo) {
	mapHandler := handler.GetMapHandler()

	e.GET("/v1/map/wetlands", mapHandler.Sites)
	e.GET("/v1/map/wetlands/:id", mapHandler.Site)
}
