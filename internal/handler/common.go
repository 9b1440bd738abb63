package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/api"
	"storefront/internal/middleware"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func bundle(c echo.Context) (*middleware.Bundle, error) {
	b, ok := middleware.BundleFrom(c)
	if !ok {
		return nil, c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}
	return b, nil
}

// writeAPIErrorはバックエンド呼び出しの失敗をそのままHTTPに写す。
// ネットワーク断は502にする。
func writeAPIError(c echo.Context, err error, fallback string) error {
	apiErr, ok := err.(*api.Error)
	if !ok || apiErr.Status == 0 {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: fallback})
	}
	return c.JSON(apiErr.Status, ErrorResponse{Error: apiErr.Message(fallback)})
}
