package api

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	"storefront/internal/storage"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// Tokensは永続ストア上のaccess/refreshトークンを読み書きする。
type Tokens struct {
	store storage.Store
}

func NewTokens(store storage.Store) *Tokens {
	return &Tokens{store: store}
}

func (t *Tokens) Access(ctx context.Context) string {
	return t.read(ctx, accessTokenKey)
}

func (t *Tokens) Refresh(ctx context.Context) string {
	return t.read(ctx, refreshTokenKey)
}

func (t *Tokens) read(ctx context.Context, key string) string {
	b, err := t.store.Get(ctx, key)
	if err != nil {
		return ""
	}
	return string(b)
}

func (t *Tokens) SetPair(ctx context.Context, pair model.TokenPair) error {
	if err := t.store.Set(ctx, accessTokenKey, []byte(pair.Access)); err != nil {
		return err
	}
	return t.store.Set(ctx, refreshTokenKey, []byte(pair.Refresh))
}

func (t *Tokens) SetAccess(ctx context.Context, access string) error {
	return t.store.Set(ctx, accessTokenKey, []byte(access))
}

// Clearは両方のトークンを消す。無ければ何もしない。
func (t *Tokens) Clear(ctx context.Context) {
	if err := t.store.Delete(ctx, accessTokenKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return
	}
	_ = t.store.Delete(ctx, refreshTokenKey)
}
