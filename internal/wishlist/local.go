package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain/model"
	"storefront/internal/storage"
)

const guestWishlistKey = "guest_wishlist"

type localBackend struct {
	store storage.Store
}

func newLocalBackend(store storage.Store) *localBackend {
	return &localBackend{store: store}
}

func (b *localBackend) load(ctx context.Context) []model.WishlistItem {
	raw, err := b.store.Get(ctx, guestWishlistKey)
	if err != nil {
		return []model.WishlistItem{}
	}

	var items []model.WishlistItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return []model.WishlistItem{}
	}
	return items
}

func (b *localBackend) save(ctx context.Context, items []model.WishlistItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return b.store.Set(ctx, guestWishlistKey, raw)
}

func (b *localBackend) Fetch(ctx context.Context) ([]model.WishlistItem, error) {
	return b.load(ctx), nil
}

// Addは冪等。既に同じ商品があれば何もしない。
func (b *localBackend) Add(ctx context.Context, productID model.ID) ([]model.WishlistItem, error) {
	items := b.load(ctx)

	for _, it := range items {
		if it.Product.ID == productID {
			return items, nil
		}
	}

	items = append(items, model.WishlistItem{
		ID:        model.ID(uuid.NewString()),
		Product:   model.ProductRef{ID: productID},
		CreatedAt: time.Now().UTC(),
	})
	if err := b.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (b *localBackend) Remove(ctx context.Context, itemID model.ID) ([]model.WishlistItem, error) {
	items := b.load(ctx)

	out := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}

	if err := b.save(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Toggleは今の所属を見て追加か削除を選ぶ。削除はエントリIDを引き直す。
func (b *localBackend) Toggle(ctx context.Context, productID model.ID) ([]model.WishlistItem, string, error) {
	items := b.load(ctx)

	for _, it := range items {
		if it.Product.ID == productID {
			out, err := b.Remove(ctx, it.ID)
			if err != nil {
				return nil, "", err
			}
			return out, "Removed from wishlist!", nil
		}
	}

	out, err := b.Add(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	return out, "Added to wishlist!", nil
}

func (b *localBackend) Clear(ctx context.Context) ([]model.WishlistItem, error) {
	if err := b.store.Delete(ctx, guestWishlistKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return []model.WishlistItem{}, nil
}
