package model

// Cartはカートのスナップショット。
// total_items / total_price は常に明細から再計算し、単独では更新しない。
type Cart struct {
	ID         ID         `json:"id,omitempty"`
	Items      []CartItem `json:"items"`
	TotalItems int64      `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

type CartItem struct {
	ID       ID         `json:"id"`
	Product  ProductRef `json:"product"`
	Quantity int64      `json:"quantity"`

	//ゲストモードでは商品価格が取れないので0のまま（既知の制限）
	TotalPrice float64 `json:"total_price"`
}

// Recalcは明細からtotal_items/total_priceを計算し直す。
func (c *Cart) Recalc() {
	var items int64
	var price float64
	for _, it := range c.Items {
		items += it.Quantity
		price += it.TotalPrice
	}
	c.TotalItems = items
	c.TotalPrice = price
}

// /cart/summary/のレスポンス
type CartSummary struct {
	TotalItems int64   `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}
