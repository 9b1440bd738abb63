package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"storefront/internal/middleware"
)

// Newはルート登録済みのechoを返す。
func New(sessions *middleware.Manager) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(sessions.Middleware())

	RegisterRoutes(e)
	return e
}

func Start(addr string, sessions *middleware.Manager) error {
	return New(sessions).Start(addr)
}
