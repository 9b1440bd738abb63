package api

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/model"
)

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/orders/", nil, &raw); err != nil {
		return nil, err
	}

	var orders []model.Order
	if err := json.Unmarshal(raw, &orders); err == nil {
		return orders, nil
	}

	var page Page[model.Order]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) Order(ctx context.Context, id model.ID) (*model.Order, error) {
	var out model.Order
	if err := c.get(ctx, "/orders/"+id.String()+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type OrderItemInput struct {
	Product  model.ID `json:"product"`
	Quantity int64    `json:"quantity"`
}

type OrderCreateInput struct {
	ShippingFirstName string `json:"shipping_first_name"`
	ShippingLastName  string `json:"shipping_last_name"`
	ShippingEmail     string `json:"shipping_email"`
	ShippingPhone     string `json:"shipping_phone"`
	ShippingAddress   string `json:"shipping_address"`
	ShippingCity      string `json:"shipping_city"`
	ShippingState     string `json:"shipping_state"`
	ShippingCountry   string `json:"shipping_country"`
	ShippingZipCode   string `json:"shipping_zip_code"`

	BillingFirstName string `json:"billing_first_name,omitempty"`
	BillingLastName  string `json:"billing_last_name,omitempty"`
	BillingEmail     string `json:"billing_email,omitempty"`
	BillingPhone     string `json:"billing_phone,omitempty"`
	BillingAddress   string `json:"billing_address,omitempty"`
	BillingCity      string `json:"billing_city,omitempty"`
	BillingState     string `json:"billing_state,omitempty"`
	BillingCountry   string `json:"billing_country,omitempty"`
	BillingZipCode   string `json:"billing_zip_code,omitempty"`

	PaymentMethod string           `json:"payment_method"`
	Items         []OrderItemInput `json:"items"`
}

func (c *Client) CreateOrder(ctx context.Context, in OrderCreateInput) (*model.Order, error) {
	var out model.Order
	if err := c.post(ctx, "/orders/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id model.ID, status model.OrderStatus, note string) (*model.Order, error) {
	body := map[string]string{"status": string(status)}
	if note != "" {
		body["note"] = note
	}

	var out model.Order
	if err := c.put(ctx, "/orders/"+id.String()+"/status/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// 注文統計。customer/seller/adminでエンドポイントが分かれている。

func (c *Client) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	return c.orderStats(ctx, "/orders/stats/")
}

func (c *Client) SellerStats(ctx context.Context) (*model.OrderStats, error) {
	return c.orderStats(ctx, "/orders/seller-stats/")
}

func (c *Client) AdminStats(ctx context.Context) (*model.OrderStats, error) {
	return c.orderStats(ctx, "/orders/admin-stats/")
}

func (c *Client) orderStats(ctx context.Context, path string) (*model.OrderStats, error) {
	var out model.OrderStats
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// 配送先住所CRUD

func (c *Client) ShippingAddresses(ctx context.Context) ([]model.ShippingAddress, error) {
	var out []model.ShippingAddress
	if err := c.get(ctx, "/orders/shipping-addresses/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateShippingAddress(ctx context.Context, in model.ShippingAddress) (*model.ShippingAddress, error) {
	var out model.ShippingAddress
	if err := c.post(ctx, "/orders/shipping-addresses/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateShippingAddress(ctx context.Context, id model.ID, in model.ShippingAddress) (*model.ShippingAddress, error) {
	var out model.ShippingAddress
	if err := c.put(ctx, "/orders/shipping-addresses/"+id.String()+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteShippingAddress(ctx context.Context, id model.ID) error {
	return c.delete(ctx, "/orders/shipping-addresses/"+id.String()+"/")
}
