package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
)

// /ordersのHTTP。注文と配送先はすべて要認証。
type OrderHandler struct{}

func NewOrderHandler() *OrderHandler { return &OrderHandler{} }

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.Use(middleware.RequireAuth())

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/stats", h.stats)
	g.GET("/seller-stats", h.sellerStats, middleware.RequireSeller())
	g.GET("/admin-stats", h.adminStats, middleware.RequireAdmin())

	g.GET("/shipping-addresses", h.listAddresses)
	g.POST("/shipping-addresses", h.createAddress)
	g.PUT("/shipping-addresses/:id", h.updateAddress)
	g.DELETE("/shipping-addresses/:id", h.deleteAddress)

	g.GET("/:id", h.detail)
	g.PUT("/:id/status", h.updateStatus, middleware.RequireSeller())
}

func (h *OrderHandler) list(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	orders, err := b.Client.Orders(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load orders")
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) detail(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	order, err := b.Client.Order(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		return writeAPIError(c, err, "order not found")
	}
	return c.JSON(http.StatusOK, order)
}

// createはチェックアウト。注文が通ったらカートを取り直す
// （サーバー側でカートが消えるため）。
func (h *OrderHandler) create(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req api.OrderCreateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	ctx := c.Request().Context()
	order, err := b.Client.CreateOrder(ctx, req)
	if err != nil {
		return writeAPIError(c, err, "failed to create order")
	}

	b.Cart.Fetch(ctx)
	return c.JSON(http.StatusCreated, order)
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
	Note   string            `json:"note"`
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, err := b.Client.UpdateOrderStatus(c.Request().Context(), model.ID(c.Param("id")), req.Status, req.Note)
	if err != nil {
		return writeAPIError(c, err, "failed to update order status")
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) stats(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.OrderStats(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load order stats")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) sellerStats(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.SellerStats(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load seller stats")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) adminStats(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.AdminStats(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load admin stats")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listAddresses(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.ShippingAddresses(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load shipping addresses")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) createAddress(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req model.ShippingAddress
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := b.Client.CreateShippingAddress(c.Request().Context(), req)
	if err != nil {
		return writeAPIError(c, err, "failed to create shipping address")
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) updateAddress(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req model.ShippingAddress
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := b.Client.UpdateShippingAddress(c.Request().Context(), model.ID(c.Param("id")), req)
	if err != nil {
		return writeAPIError(c, err, "failed to update shipping address")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) deleteAddress(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	if err := b.Client.DeleteShippingAddress(c.Request().Context(), model.ID(c.Param("id"))); err != nil {
		return writeAPIError(c, err, "failed to delete shipping address")
	}
	return c.NoContent(http.StatusNoContent)
}
