package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
}

// RequireAuthは未認証セッションを弾く。
// 権限の本判定はバックエンド側にもあるので、ここは入口のガードでしかない。
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			b, ok := BundleFrom(c)
			if !ok || !b.Session.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
			}
			return next(c)
		}
	}
}

func RequireSeller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			b, ok := BundleFrom(c)
			if !ok || !b.Session.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
			}
			if !b.Session.IsSeller() && !b.Session.IsAdmin() {
				return c.JSON(http.StatusForbidden, errorBody{Error: "forbidden"})
			}
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			b, ok := BundleFrom(c)
			if !ok || !b.Session.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, errorBody{Error: "unauthorized"})
			}
			if !b.Session.IsAdmin() {
				return c.JSON(http.StatusForbidden, errorBody{Error: "forbidden"})
			}
			return next(c)
		}
	}
}
