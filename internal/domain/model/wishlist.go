package model

import "time"

// WishlistItemはウィッシュリストの1件。商品IDごとに高々1件。
type WishlistItem struct {
	ID        ID         `json:"id"`
	Product   ProductRef `json:"product"`
	CreatedAt time.Time  `json:"created_at"`
}
