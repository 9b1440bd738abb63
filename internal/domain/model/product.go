package model

import "time"

// ProductRefはカート・ウィッシュリストの明細に埋め込まれる商品参照。
// 表示用フィールドは非正規化コピーで、ゲストモードではIDしか埋まらない。
type ProductRef struct {
	ID              ID      `json:"id"`
	Title           string  `json:"title,omitempty"`
	Price           float64 `json:"price,omitempty"`
	DiscountedPrice float64 `json:"discounted_price,omitempty"`
	PrimaryImage    string  `json:"primary_image,omitempty"`
}

type Product struct {
	ID               ID        `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	DiscountedPrice  float64   `json:"discounted_price"`
	IsDiscountActive bool      `json:"is_discount_active"`
	StockQuantity    int64     `json:"stock_quantity"`
	Category         *Category `json:"category,omitempty"`
	Brand            *Brand    `json:"brand,omitempty"`
	Tags             []Tag     `json:"tags,omitempty"`
	PrimaryImage     string    `json:"primary_image"`
	AverageRating    float64   `json:"average_rating"`
	ReviewCount      int64     `json:"review_count"`
	IsFeatured       bool      `json:"is_featured"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `json:"is_active"`
}

type Brand struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	IsActive    bool   `json:"is_active"`
}

type Tag struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// 商品詳細ページの統計（/products/{id}/stats/）
type ProductStats struct {
	TotalSold     int64   `json:"total_sold"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
	WishlistCount int64   `json:"wishlist_count"`
}
