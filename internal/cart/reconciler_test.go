package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/notify"
	"storefront/internal/storage"
)

// authStubはテスト中にモードを切り替えられる認証状態。
type authStub struct {
	authed bool
}

func (a *authStub) IsAuthenticated() bool { return a.authed }

func newGuestReconciler(t *testing.T) (*Reconciler, storage.Store) {
	t.Helper()

	store, err := storage.New(storage.DriverMemory)
	require.NoError(t, err)

	//ゲストモードではAPIクライアントは呼ばれない
	client := api.NewClient("http://127.0.0.1:1", store)
	return New(&authStub{authed: false}, client, store, notify.Nop{}), store
}

func TestGuestAddDedupsByProduct(t *testing.T) {
	r, _ := newGuestReconciler(t)
	ctx := context.Background()

	assert.True(t, r.Add(ctx, "42", 2).Success)
	assert.True(t, r.Add(ctx, "42", 3).Success)
	assert.True(t, r.Add(ctx, "7", 1).Success)

	cart := r.Snapshot()
	require.NotNil(t, cart)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, model.ID("42"), cart.Items[0].Product.ID)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)
	assert.Equal(t, int64(6), r.ItemCount())
}

func TestGuestAddDefaultsQuantityToOne(t *testing.T) {
	r, _ := newGuestReconciler(t)
	ctx := context.Background()

	assert.True(t, r.Add(ctx, "42", 0).Success)
	assert.Equal(t, int64(1), r.ItemCount())
}

func TestGuestUpdateQuantityZeroRemovesLine(t *testing.T) {
	r, _ := newGuestReconciler(t)
	ctx := context.Background()

	r.Add(ctx, "42", 2)
	r.Add(ctx, "7", 1)

	itemID := r.Snapshot().Items[0].ID
	assert.True(t, r.UpdateQuantity(ctx, itemID, 0).Success)

	cart := r.Snapshot()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, model.ID("7"), cart.Items[0].Product.ID)
	assert.Equal(t, int64(1), cart.TotalItems)
}

func TestGuestRemoveRecalculatesTotals(t *testing.T) {
	r, _ := newGuestReconciler(t)
	ctx := context.Background()

	r.Add(ctx, "42", 2)
	r.Add(ctx, "7", 3)

	itemID := r.Snapshot().Items[1].ID
	assert.True(t, r.Remove(ctx, itemID).Success)

	assert.Equal(t, int64(2), r.ItemCount())
	require.Len(t, r.Snapshot().Items, 1)
}

func TestGuestClearDeletesPersistedBlob(t *testing.T) {
	r, store := newGuestReconciler(t)
	ctx := context.Background()

	r.Add(ctx, "42", 2)

	_, err := store.Get(ctx, "guest_cart")
	require.NoError(t, err)

	assert.True(t, r.Clear(ctx).Success)
	assert.Equal(t, int64(0), r.ItemCount())
	assert.Equal(t, float64(0), r.Total())

	_, err = store.Get(ctx, "guest_cart")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGuestStateSurvivesRehydration(t *testing.T) {
	r, store := newGuestReconciler(t)
	ctx := context.Background()

	r.Add(ctx, "42", 2)

	//同じストアから作り直しても読める（永続化の確認）
	client := api.NewClient("http://127.0.0.1:1", store)
	r2 := New(&authStub{authed: false}, client, store, notify.Nop{})
	r2.Hydrate(ctx)

	assert.Equal(t, int64(2), r2.ItemCount())
}

// ---- 認証済みモード ----

type fakeCartUpstream struct {
	e *echo.Echo

	getCalls int
	//addがカート全体を返すかどうか
	addReturnsFullCart bool

	serverCart model.Cart
}

func newFakeCartUpstream() *fakeCartUpstream {
	f := &fakeCartUpstream{
		e: echo.New(),
		serverCart: model.Cart{
			Items: []model.CartItem{
				{ID: "10", Product: model.ProductRef{ID: "99", Title: "Server Item", Price: 25}, Quantity: 1, TotalPrice: 25},
			},
			TotalItems: 1,
			TotalPrice: 25,
		},
	}

	f.e.GET("/cart/", func(c echo.Context) error {
		f.getCalls++
		return c.JSON(http.StatusOK, f.serverCart)
	})

	f.e.POST("/cart/add/", func(c echo.Context) error {
		if f.addReturnsFullCart {
			return c.JSON(http.StatusOK, f.serverCart)
		}
		//明細単体だけ返す（カート全体ではない）
		return c.JSON(http.StatusOK, map[string]any{"id": 11, "quantity": 1})
	})

	f.e.DELETE("/cart/remove/:id/", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	f.e.DELETE("/cart/clear/", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	return f
}

func newAuthedReconciler(t *testing.T, f *fakeCartUpstream) (*Reconciler, *authStub, storage.Store) {
	t.Helper()

	srv := httptest.NewServer(f.e)
	t.Cleanup(srv.Close)

	store, err := storage.New(storage.DriverMemory)
	require.NoError(t, err)

	auth := &authStub{authed: true}
	client := api.NewClient(srv.URL, store)
	return New(auth, client, store, notify.Nop{}), auth, store
}

func TestAuthedAddAdoptsFullCartResponse(t *testing.T) {
	f := newFakeCartUpstream()
	f.addReturnsFullCart = true
	r, _, _ := newAuthedReconciler(t, f)

	assert.True(t, r.Add(context.Background(), "99", 1).Success)

	//レスポンスをそのまま採用したので再取得していない
	assert.Equal(t, 0, f.getCalls)
	assert.Equal(t, int64(1), r.ItemCount())
}

func TestAuthedAddRefetchesOnPartialResponse(t *testing.T) {
	f := newFakeCartUpstream()
	f.addReturnsFullCart = false
	r, _, _ := newAuthedReconciler(t, f)

	assert.True(t, r.Add(context.Background(), "99", 1).Success)

	assert.Equal(t, 1, f.getCalls)
	assert.Equal(t, int64(1), r.ItemCount())
}

func TestAuthedRemoveAlwaysRefetches(t *testing.T) {
	f := newFakeCartUpstream()
	r, _, _ := newAuthedReconciler(t, f)

	assert.True(t, r.Remove(context.Background(), "10").Success)
	assert.Equal(t, 1, f.getCalls)
}

func TestAuthedAddFailureLeavesSnapshotUntouched(t *testing.T) {
	e := echo.New()
	e.POST("/cart/add/", func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, map[string]any{"non_field_errors": []string{"out of stock"}})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	store, err := storage.New(storage.DriverMemory)
	require.NoError(t, err)
	r := New(&authStub{authed: true}, api.NewClient(srv.URL, store), store, notify.Nop{})

	res := r.Add(context.Background(), "99", 1)
	assert.False(t, res.Success)
	assert.Equal(t, "out of stock", res.Error)
	assert.Nil(t, r.Snapshot())
}

// ゲストで積んだカートはログイン後にマージされず、サーバー側の内容で上書きされる。
func TestLoginDiscardsGuestCart(t *testing.T) {
	f := newFakeCartUpstream()
	r, auth, _ := newAuthedReconciler(t, f)
	ctx := context.Background()

	auth.authed = false
	r.Add(ctx, "42", 2)
	r.Add(ctx, "42", 3)

	cart := r.Snapshot()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)

	//ログイン後の取り直し
	auth.authed = true
	r.Fetch(ctx)

	cart = r.Snapshot()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, model.ID("99"), cart.Items[0].Product.ID)
	assert.Equal(t, int64(1), cart.TotalItems)
}
