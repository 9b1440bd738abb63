package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/model"
)

// /wishlistのHTTP
type WishlistHandler struct{}

func NewWishlistHandler() *WishlistHandler { return &WishlistHandler{} }

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/wishlist")
	g.GET("", h.getWishlist)
	g.POST("", h.add)
	g.DELETE("/items/:id", h.remove)
	g.POST("/toggle/:productId", h.toggle)
	g.GET("/contains/:productId", h.contains)
	g.DELETE("", h.clear)
}

type wishlistResponse struct {
	Items []model.WishlistItem `json:"items"`
	Count int                  `json:"count"`
}

func (h *WishlistHandler) getWishlist(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wishlistResponse{
		Items: b.Wishlist.Snapshot(),
		Count: b.Wishlist.Count(),
	})
}

type addWishlistRequest struct {
	ProductID model.ID `json:"product_id"`
}

func (h *WishlistHandler) add(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req addWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	return c.JSON(http.StatusOK, b.Wishlist.Add(c.Request().Context(), req.ProductID))
}

func (h *WishlistHandler) remove(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b.Wishlist.Remove(c.Request().Context(), model.ID(c.Param("id"))))
}

func (h *WishlistHandler) toggle(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b.Wishlist.Toggle(c.Request().Context(), model.ID(c.Param("productId"))))
}

func (h *WishlistHandler) contains(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"contains": b.Wishlist.Contains(model.ID(c.Param("productId"))),
	})
}

func (h *WishlistHandler) clear(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b.Wishlist.Clear(c.Request().Context()))
}
