// Package cartはカートの二重モード（認証済み/ゲスト）を調停する。
package cart

import (
	"context"
	"log/slog"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/notify"
	"storefront/internal/storage"
)

// AuthStateはセッションの認証状態だけを見る。
type AuthState interface {
	IsAuthenticated() bool
}

type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Reconcilerはスナップショットを持ち、モードに応じたBackendへ委譲する。
// モード切替時のマージはしない（ログインするとゲストカートは破棄される）。
type Reconciler struct {
	auth     AuthState
	remote   Backend
	local    Backend
	notifier notify.Notifier

	snapshot *model.Cart
	loading  bool
}

func New(auth AuthState, client *api.Client, store storage.Store, notifier notify.Notifier) *Reconciler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Reconciler{
		auth:     auth,
		remote:   newRemoteBackend(client),
		local:    newLocalBackend(store),
		notifier: notifier,
	}
}

func (r *Reconciler) backend() Backend {
	if r.auth.IsAuthenticated() {
		return r.remote
	}
	return r.local
}

// Hydrateはセッション開始時の復元。
// 認証済みなら正本を取得、ゲストなら保存済みblobを読む。
func (r *Reconciler) Hydrate(ctx context.Context) {
	r.Fetch(ctx)
}

// Fetchは取得失敗をログに残すだけで、スナップショットは触らない。
func (r *Reconciler) Fetch(ctx context.Context) {
	r.loading = true
	defer func() { r.loading = false }()

	cart, err := r.backend().Fetch(ctx)
	if err != nil {
		slog.Error("failed to fetch cart", slog.String("error", err.Error()))
		return
	}
	r.snapshot = cart
}

func (r *Reconciler) Add(ctx context.Context, productID model.ID, quantity int64) Result {
	if quantity <= 0 {
		quantity = 1
	}

	cart, err := r.backend().Add(ctx, productID, quantity)
	if err != nil {
		msg := api.Message(err, "Failed to add product to cart")
		r.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	r.snapshot = cart
	r.notifier.Success("Product added to cart!")
	return Result{Success: true}
}

func (r *Reconciler) UpdateQuantity(ctx context.Context, itemID model.ID, quantity int64) Result {
	cart, err := r.backend().UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		msg := api.Message(err, "Failed to update cart item")
		r.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	r.snapshot = cart
	r.notifier.Success("Cart updated!")
	return Result{Success: true}
}

func (r *Reconciler) Remove(ctx context.Context, itemID model.ID) Result {
	cart, err := r.backend().Remove(ctx, itemID)
	if err != nil {
		msg := api.Message(err, "Failed to remove item from cart")
		r.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	r.snapshot = cart
	r.notifier.Success("Item removed from cart!")
	return Result{Success: true}
}

func (r *Reconciler) Clear(ctx context.Context) Result {
	cart, err := r.backend().Clear(ctx)
	if err != nil {
		msg := api.Message(err, "Failed to clear cart")
		r.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	r.snapshot = cart
	r.notifier.Success("Cart cleared!")
	return Result{Success: true}
}

func (r *Reconciler) Snapshot() *model.Cart { return r.snapshot }

func (r *Reconciler) Loading() bool { return r.loading }

// ItemCount/Totalはスナップショットからの純粋な読み取り。カート無しは0。

func (r *Reconciler) ItemCount() int64 {
	if r.snapshot == nil {
		return 0
	}
	return r.snapshot.TotalItems
}

func (r *Reconciler) Total() float64 {
	if r.snapshot == nil {
		return 0
	}
	return r.snapshot.TotalPrice
}
