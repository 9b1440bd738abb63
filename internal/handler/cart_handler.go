package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/model"
)

// /cartのHTTP
type CartHandler struct{}

func NewCartHandler() *CartHandler { return &CartHandler{} }

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")
	g.GET("", h.getCart)
	g.GET("/summary", h.summary)
	g.POST("/items", h.addItem)
	g.PUT("/items/:id", h.updateItem)
	g.DELETE("/items/:id", h.removeItem)
	g.DELETE("", h.clear)
}

func (h *CartHandler) getCart(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	cart := b.Cart.Snapshot()
	if cart == nil {
		cart = &model.Cart{Items: []model.CartItem{}}
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) summary(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, model.CartSummary{
		TotalItems: b.Cart.ItemCount(),
		TotalPrice: b.Cart.Total(),
	})
}

type addCartItemRequest struct {
	ProductID model.ID `json:"product_id"`
	Quantity  int64    `json:"quantity"`
}

func (h *CartHandler) addItem(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	res := b.Cart.Add(c.Request().Context(), req.ProductID, req.Quantity)
	return c.JSON(http.StatusOK, res)
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) updateItem(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res := b.Cart.UpdateQuantity(c.Request().Context(), model.ID(c.Param("id")), req.Quantity)
	return c.JSON(http.StatusOK, res)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	res := b.Cart.Remove(c.Request().Context(), model.ID(c.Param("id")))
	return c.JSON(http.StatusOK, res)
}

func (h *CartHandler) clear(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	res := b.Cart.Clear(c.Request().Context())
	return c.JSON(http.StatusOK, res)
}
