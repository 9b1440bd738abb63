package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID            ID          `json:"id"`
	OrderNumber   string      `json:"order_number"`
	UserName      string      `json:"user_name,omitempty"`
	UserEmail     string      `json:"user_email,omitempty"`
	Status        OrderStatus `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	Items         []OrderItem `json:"items,omitempty"`
	TotalAmount   float64     `json:"total_amount"`
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID         ID         `json:"id"`
	Product    ProductRef `json:"product"`
	Quantity   int64      `json:"quantity"`
	UnitPrice  float64    `json:"unit_price"`
	TotalPrice float64    `json:"total_price"`
}

// 注文統計（/orders/stats/ 系。ロールにより返る範囲が違う）
type OrderStats struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders int64   `json:"pending_orders"`
	TotalProducts int64   `json:"total_products,omitempty"`
	TotalUsers    int64   `json:"total_users,omitempty"`
}
