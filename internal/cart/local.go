package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"storefront/internal/domain/model"
	"storefront/internal/storage"
)

const guestCartKey = "guest_cart"

// localBackendはゲストモード。正本はローカルストレージのJSON blob。
// 商品IDで明細を重複排除し、合計は毎回ゼロから計算し直す。
type localBackend struct {
	store storage.Store
}

func newLocalBackend(store storage.Store) *localBackend {
	return &localBackend{store: store}
}

func (b *localBackend) load(ctx context.Context) *model.Cart {
	empty := &model.Cart{Items: []model.CartItem{}}

	raw, err := b.store.Get(ctx, guestCartKey)
	if err != nil {
		return empty
	}

	var cart model.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		//壊れたblobは空扱い
		return empty
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	return &cart
}

func (b *localBackend) save(ctx context.Context, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return b.store.Set(ctx, guestCartKey, raw)
}

func (b *localBackend) Fetch(ctx context.Context) (*model.Cart, error) {
	return b.load(ctx), nil
}

func (b *localBackend) Add(ctx context.Context, productID model.ID, quantity int64) (*model.Cart, error) {
	cart := b.load(ctx)

	found := false
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, model.CartItem{
			ID:       model.ID(uuid.NewString()),
			Product:  model.ProductRef{ID: productID},
			Quantity: quantity,
			//商品情報を引いていないので価格は0のまま（既知の制限）
			TotalPrice: 0,
		})
	}

	cart.Recalc()
	if err := b.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (b *localBackend) UpdateQuantity(ctx context.Context, itemID model.ID, quantity int64) (*model.Cart, error) {
	cart := b.load(ctx)

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	//0以下は行ごと消す
	if quantity <= 0 {
		cart.Items = removeItem(cart.Items, itemID)
	}

	cart.Recalc()
	if err := b.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (b *localBackend) Remove(ctx context.Context, itemID model.ID) (*model.Cart, error) {
	cart := b.load(ctx)
	cart.Items = removeItem(cart.Items, itemID)

	cart.Recalc()
	if err := b.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clearは保存blobごと消して空のカートに戻す。
func (b *localBackend) Clear(ctx context.Context) (*model.Cart, error) {
	if err := b.store.Delete(ctx, guestCartKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return &model.Cart{Items: []model.CartItem{}}, nil
}

func removeItem(items []model.CartItem, itemID model.ID) []model.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}
