package cart

import (
	"context"

	"storefront/internal/domain/model"
)

// Backendはカート本体の置き場所。
// 認証済みはバックエンドAPI、ゲストはローカルストレージ。
// マージや合計の計算規則をここに寄せて、Reconcilerは分岐だけする。
type Backend interface {
	Fetch(ctx context.Context) (*model.Cart, error)
	Add(ctx context.Context, productID model.ID, quantity int64) (*model.Cart, error)
	UpdateQuantity(ctx context.Context, itemID model.ID, quantity int64) (*model.Cart, error)
	Remove(ctx context.Context, itemID model.ID) (*model.Cart, error)
	Clear(ctx context.Context) (*model.Cart, error)
}
