package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
)

// /productsのHTTP。カタログはAPIクライアントの型付きパススルー。
type ProductHandler struct{}

func NewProductHandler() *ProductHandler { return &ProductHandler{} }

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/products")
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/featured", h.featured)
	g.GET("/categories", h.categories)
	g.GET("/brands", h.brands)
	g.GET("/tags", h.tags)
	g.GET("/:id", h.detail)
	g.GET("/:id/reviews", h.reviews)
	g.POST("/:id/reviews", h.createReview, middleware.RequireAuth())
	g.GET("/:id/stats", h.stats)

	//出品者向け
	g.POST("", h.create, middleware.RequireSeller())
	g.PUT("/:id", h.update, middleware.RequireSeller())
	g.DELETE("/:id", h.remove, middleware.RequireSeller())
}

func (h *ProductHandler) list(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	page, err := b.Client.Products(c.Request().Context(), c.QueryParams())
	if err != nil {
		return writeAPIError(c, err, "failed to load products")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) search(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	page, err := b.Client.SearchProducts(c.Request().Context(), c.QueryParams())
	if err != nil {
		return writeAPIError(c, err, "search failed")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) featured(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	products, err := b.Client.FeaturedProducts(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load featured products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) categories(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.Categories(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load categories")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) brands(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.Brands(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load brands")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) tags(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.Tags(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err, "failed to load tags")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	product, err := b.Client.Product(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		return writeAPIError(c, err, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) reviews(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.ProductReviews(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		return writeAPIError(c, err, "failed to load reviews")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) createReview(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req api.ReviewInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	review, err := b.Client.CreateProductReview(c.Request().Context(), model.ID(c.Param("id")), req)
	if err != nil {
		return writeAPIError(c, err, "failed to create review")
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ProductHandler) stats(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	out, err := b.Client.ProductStats(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		return writeAPIError(c, err, "failed to load product stats")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req api.ProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	product, err := b.Client.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return writeAPIError(c, err, "failed to create product")
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) update(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req api.ProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	product, err := b.Client.UpdateProduct(c.Request().Context(), model.ID(c.Param("id")), req)
	if err != nil {
		return writeAPIError(c, err, "failed to update product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) remove(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	if err := b.Client.DeleteProduct(c.Request().Context(), model.ID(c.Param("id"))); err != nil {
		return writeAPIError(c, err, "failed to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}
