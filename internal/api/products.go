package api

import (
	"context"
	"net/url"

	"storefront/internal/domain/model"
)

// Pageはバックエンドのページネーション形式（DRF風）。
type Page[T any] struct {
	Count    int64  `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []T    `json:"results"`
}

func (c *Client) Products(ctx context.Context, query url.Values) (*Page[model.Product], error) {
	var out Page[model.Product]
	if err := c.get(ctx, "/products/", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Product(ctx context.Context, id model.ID) (*model.Product, error) {
	var out model.Product
	if err := c.get(ctx, "/products/"+id.String()+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchProducts(ctx context.Context, query url.Values) (*Page[model.Product], error) {
	var out Page[model.Product]
	if err := c.get(ctx, "/products/search/", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := c.get(ctx, "/products/featured/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.get(ctx, "/products/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Brands(ctx context.Context) ([]model.Brand, error) {
	var out []model.Brand
	if err := c.get(ctx, "/products/brands/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Tags(ctx context.Context) ([]model.Tag, error) {
	var out []model.Tag
	if err := c.get(ctx, "/products/tags/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// 出品者向けCRUD。権限判定はサーバー側。

type ProductInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	StockQuantity int64    `json:"stock_quantity"`
	Category      model.ID `json:"category,omitempty"`
	Brand         model.ID `json:"brand,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	var out model.Product
	if err := c.post(ctx, "/products/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id model.ID, in ProductInput) (*model.Product, error) {
	var out model.Product
	if err := c.put(ctx, "/products/"+id.String()+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id model.ID) error {
	return c.delete(ctx, "/products/"+id.String()+"/")
}

func (c *Client) ProductReviews(ctx context.Context, id model.ID) ([]model.Review, error) {
	var out []model.Review
	if err := c.get(ctx, "/products/"+id.String()+"/reviews/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

func (c *Client) CreateProductReview(ctx context.Context, id model.ID, in ReviewInput) (*model.Review, error) {
	var out model.Review
	if err := c.post(ctx, "/products/"+id.String()+"/reviews/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductStats(ctx context.Context, id model.ID) (*model.ProductStats, error) {
	var out model.ProductStats
	if err := c.get(ctx, "/products/"+id.String()+"/stats/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
