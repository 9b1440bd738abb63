package api

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/model"
)

func (c *Client) Cart(ctx context.Context) (*model.Cart, error) {
	var out model.Cart
	if err := c.get(ctx, "/cart/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToCartは追加結果を返す。
// バックエンドがカート全体を返したときはそれを返し、明細単体しか
// 返さなかったときはnilを返す（呼び出し側が再取得する）。
func (c *Client) AddToCart(ctx context.Context, productID model.ID, quantity int64) (*model.Cart, error) {
	body := map[string]any{"product": productID, "quantity": quantity}

	var raw json.RawMessage
	if err := c.post(ctx, "/cart/add/", body, &raw); err != nil {
		return nil, err
	}
	return cartFromResponse(raw), nil
}

// UpdateCartItemもAddToCartと同じ形。
func (c *Client) UpdateCartItem(ctx context.Context, itemID model.ID, quantity int64) (*model.Cart, error) {
	body := map[string]any{"quantity": quantity}

	var raw json.RawMessage
	if err := c.put(ctx, "/cart/update/"+itemID.String()+"/", body, &raw); err != nil {
		return nil, err
	}
	return cartFromResponse(raw), nil
}

func (c *Client) RemoveFromCart(ctx context.Context, itemID model.ID) error {
	return c.delete(ctx, "/cart/remove/"+itemID.String()+"/")
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.delete(ctx, "/cart/clear/")
}

func (c *Client) CartSummary(ctx context.Context) (*model.CartSummary, error) {
	var out model.CartSummary
	if err := c.get(ctx, "/cart/summary/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// cartFromResponseはレスポンスがitems配列を含むカート全体かどうかを見る。
func cartFromResponse(raw json.RawMessage) *model.Cart {
	var probe struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	if len(probe.Items) == 0 || probe.Items[0] != '[' {
		return nil
	}

	var cart model.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil
	}
	return &cart
}
