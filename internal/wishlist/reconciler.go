// Package wishlistはウィッシュリストの二重モードを調停する。
package wishlist

import (
	"context"
	"log/slog"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/notify"
	"storefront/internal/storage"
)

type AuthState interface {
	IsAuthenticated() bool
}

type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Reconciler struct {
	auth     AuthState
	remote   Backend
	local    Backend
	notifier notify.Notifier

	snapshot []model.WishlistItem
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
		snapshot: []model.WishlistItem{},
	}
}

func (r *Reconciler) backend() Backend {
	if r.auth.IsAuthenticated() {
		return r.remote
	}
	return r.local
}

func (r *Reconciler) Hydrate(ctx context.Context) {
	r.Fetch(ctx)
}

func (r *Reconciler) Fetch(ctx context.Context) {
	r.loading = true
	defer func() { r.loading = false }()

	items, err := r.backend().Fetch(ctx)
	if err != nil {
		slog.Error("failed to fetch wishlist", slog.String("error", err.Error()))
		return
	}
	r.snapshot = items
}

func (r *Reconciler) Add(ctx context.Context, productID model.ID) Result {
	items, err := r.backend().Add(ctx, productID)
	if err != nil {
		msg := api.Message(err, "Failed to add to wishlist")
		r.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	r.snapshot = items
	r.notifier.Success("Added to wishlist!")
	return Result{Success: true}
}

func (r *Reconciler) Remove(ctx context.Context, itemID model.ID) Result {
	items, err := r.backend().Remove(ctx, itemID)
	if err != nil {
		msg := api.Message(err, "Failed to remove from wishlist")
		r.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	r.snapshot = items
	r.notifier.Success("Removed from wishlist!")
	return Result{Success: true}
}

// Toggleは所属を反転する。2回呼べば元に戻る。
func (r *Reconciler) Toggle(ctx context.Context, productID model.ID) Result {
	items, msg, err := r.backend().Toggle(ctx, productID)
	if err != nil {
		emsg := api.Message(err, "Failed to toggle wishlist")
		r.notifier.Error(emsg)
		return Result{Success: false, Error: emsg}
	}

	r.snapshot = items
	if msg != "" {
		r.notifier.Success(msg)
	}
	return Result{Success: true}
}

func (r *Reconciler) Clear(ctx context.Context) Result {
	items, err := r.backend().Clear(ctx)
	if err != nil {
		msg := api.Message(err, "Failed to clear wishlist")
		r.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	r.snapshot = items
	r.notifier.Success("Wishlist cleared!")
	return Result{Success: true}
}

func (r *Reconciler) Snapshot() []model.WishlistItem { return r.snapshot }

func (r *Reconciler) Loading() bool { return r.loading }

// Containsはスナップショット上の所属判定。
func (r *Reconciler) Contains(productID model.ID) bool {
	for _, it := range r.snapshot {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

func (r *Reconciler) Count() int {
	return len(r.snapshot)
}
