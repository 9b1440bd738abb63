package wishlist

import (
	"context"

	"storefront/internal/api"
	"storefront/internal/domain/model"
)

type remoteBackend struct {
	api *api.Client
}

func newRemoteBackend(client *api.Client) *remoteBackend {
	return &remoteBackend{api: client}
}

func (b *remoteBackend) Fetch(ctx context.Context) ([]model.WishlistItem, error) {
	return b.api.Wishlist(ctx)
}

func (b *remoteBackend) Add(ctx context.Context, productID model.ID) ([]model.WishlistItem, error) {
	if err := b.api.AddToWishlist(ctx, productID); err != nil {
		return nil, err
	}
	return b.api.Wishlist(ctx)
}

func (b *remoteBackend) Remove(ctx context.Context, itemID model.ID) ([]model.WishlistItem, error) {
	if err := b.api.RemoveFromWishlist(ctx, itemID); err != nil {
		return nil, err
	}
	return b.api.Wishlist(ctx)
}

// Toggleは1回のAPI呼び出しで追加/削除を切り替え、
// サーバーが返した結果メッセージをそのまま伝える。
func (b *remoteBackend) Toggle(ctx context.Context, productID model.ID) ([]model.WishlistItem, string, error) {
	msg, err := b.api.ToggleWishlist(ctx, productID)
	if err != nil {
		return nil, "", err
	}

	items, err := b.api.Wishlist(ctx)
	if err != nil {
		return nil, "", err
	}
	return items, msg, nil
}

// Clearはバックエンドに一括削除APIがまだ無いので、
// ローカルのスナップショットを空にするだけ。
// TODO: /products/wishlist/clear/ がAPIに生えたらここから呼ぶ
func (b *remoteBackend) Clear(ctx context.Context) ([]model.WishlistItem, error) {
	return []model.WishlistItem{}, nil
}
