package cart

import (
	"context"

	"storefront/internal/api"
	"storefront/internal/domain/model"
)

// remoteBackendは認証済みモード。正本はサーバー側にある。
type remoteBackend struct {
	api *api.Client
}

func newRemoteBackend(client *api.Client) *remoteBackend {
	return &remoteBackend{api: client}
}

func (b *remoteBackend) Fetch(ctx context.Context) (*model.Cart, error) {
	return b.api.Cart(ctx)
}

// Addはレスポンスにカート全体が入っていればそれを採用して
// 再取得を省く。明細単体のときだけ取り直す。
func (b *remoteBackend) Add(ctx context.Context, productID model.ID, quantity int64) (*model.Cart, error) {
	cart, err := b.api.AddToCart(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	return b.api.Cart(ctx)
}

func (b *remoteBackend) UpdateQuantity(ctx context.Context, itemID model.ID, quantity int64) (*model.Cart, error) {
	cart, err := b.api.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	return b.api.Cart(ctx)
}

// Removeは削除後に必ず取り直す（楽観更新はしない）。
func (b *remoteBackend) Remove(ctx context.Context, itemID model.ID) (*model.Cart, error) {
	if err := b.api.RemoveFromCart(ctx, itemID); err != nil {
		return nil, err
	}
	return b.api.Cart(ctx)
}

func (b *remoteBackend) Clear(ctx context.Context) (*model.Cart, error) {
	if err := b.api.ClearCart(ctx); err != nil {
		return nil, err
	}
	return b.api.Cart(ctx)
}
