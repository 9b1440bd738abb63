package api

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/model"
)

// Wishlistは一覧を返す。ページネーションあり（results）と
// 素の配列の両方の形を受ける。
func (c *Client) Wishlist(ctx context.Context) ([]model.WishlistItem, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/products/wishlist/", nil, &raw); err != nil {
		return nil, err
	}

	var items []model.WishlistItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var page Page[model.WishlistItem]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) AddToWishlist(ctx context.Context, productID model.ID) error {
	return c.post(ctx, "/products/wishlist/", map[string]any{"product": productID}, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, itemID model.ID) error {
	return c.delete(ctx, "/products/wishlist/"+itemID.String()+"/")
}

// ToggleWishlistはサーバーの結果メッセージ（added/removed）を返す。
func (c *Client) ToggleWishlist(ctx context.Context, productID model.ID) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/products/wishlist/toggle/"+productID.String()+"/", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
