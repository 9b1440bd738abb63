package wishlist

import (
	"context"

	"storefront/internal/domain/model"
)

// Backendはウィッシュリストの置き場所。カートと同じ二重モード構成だが、
// こちらは数量を持たない、商品IDをキーにした集合。
type Backend interface {
	Fetch(ctx context.Context) ([]model.WishlistItem, error)
	Add(ctx context.Context, productID model.ID) ([]model.WishlistItem, error)
	Remove(ctx context.Context, itemID model.ID) ([]model.WishlistItem, error)
	Toggle(ctx context.Context, productID model.ID) ([]model.WishlistItem, string, error)
	Clear(ctx context.Context) ([]model.WishlistItem, error)
}
