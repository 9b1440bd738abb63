package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/handler"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	handler.NewAuthHandler().RegisterRoutes(e)
	handler.NewCartHandler().RegisterRoutes(e)
	handler.NewWishlistHandler().RegisterRoutes(e)
	handler.NewProductHandler().RegisterRoutes(e)
	handler.NewOrderHandler().RegisterRoutes(e)
}
