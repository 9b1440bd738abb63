package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/model"
	"storefront/internal/storage"
)

// fakeUpstreamはバックエンドAPIの代役。呼び出し回数を数える。
type fakeUpstream struct {
	e *echo.Echo

	userInfoCalls int
	refreshCalls  int

	//user-infoが受け付けるBearerトークン
	validAccess string
	//refreshが成功したとき返すaccess
	nextAccess string
	//refreshを失敗させる
	refreshFails bool
}

func newFakeUpstream() *fakeUpstream {
	f := &fakeUpstream{e: echo.New(), validAccess: "good", nextAccess: "good"}

	f.e.GET("/auth/user-info/", func(c echo.Context) error {
		f.userInfoCalls++
		if c.Request().Header.Get("Authorization") != "Bearer "+f.validAccess {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "token expired"})
		}
		return c.JSON(http.StatusOK, map[string]any{"id": 1, "email": "a@example.com"})
	})

	f.e.POST("/auth/token/refresh/", func(c echo.Context) error {
		f.refreshCalls++
		if f.refreshFails {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "refresh invalid"})
		}
		var body struct {
			Refresh string `json:"refresh"`
		}
		if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil || body.Refresh == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "refresh required"})
		}
		return c.JSON(http.StatusOK, map[string]string{"access": f.nextAccess})
	})

	return f
}

func newTestClient(t *testing.T, f *fakeUpstream, hook func()) (*Client, storage.Store) {
	t.Helper()

	srv := httptest.NewServer(f.e)
	t.Cleanup(srv.Close)

	store, err := storage.New(storage.DriverMemory)
	require.NoError(t, err)

	opts := []ClientOption{}
	if hook != nil {
		opts = append(opts, WithAuthExpiredHook(hook))
	}
	return NewClient(srv.URL, store, opts...), store
}

func TestBearerAttached(t *testing.T) {
	f := newFakeUpstream()
	client, _ := newTestClient(t, f, nil)

	ctx := context.Background()
	require.NoError(t, client.Tokens().SetPair(ctx, model.TokenPair{Access: "good", Refresh: "r1"}))

	user, err := client.UserInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Equal(t, 1, f.userInfoCalls)
	assert.Equal(t, 0, f.refreshCalls)
}

func TestRefreshRetryOnce(t *testing.T) {
	f := newFakeUpstream()
	f.validAccess = "fresh"
	f.nextAccess = "fresh"
	client, _ := newTestClient(t, f, nil)

	ctx := context.Background()
	require.NoError(t, client.Tokens().SetPair(ctx, model.TokenPair{Access: "stale", Refresh: "r1"}))

	user, err := client.UserInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)

	//401→refresh→1回だけ再試行
	assert.Equal(t, 2, f.userInfoCalls)
	assert.Equal(t, 1, f.refreshCalls)
	assert.Equal(t, "fresh", client.Tokens().Access(ctx))
}

func TestRefreshFailureClearsCredentials(t *testing.T) {
	f := newFakeUpstream()
	f.validAccess = "fresh"
	f.refreshFails = true

	expired := false
	client, _ := newTestClient(t, f, func() { expired = true })

	ctx := context.Background()
	require.NoError(t, client.Tokens().SetPair(ctx, model.TokenPair{Access: "stale", Refresh: "r1"}))

	_, err := client.UserInfo(ctx)
	require.Error(t, err)

	assert.Equal(t, 1, f.userInfoCalls)
	assert.Equal(t, 1, f.refreshCalls)
	assert.True(t, expired)
	assert.Empty(t, client.Tokens().Access(ctx))
	assert.Empty(t, client.Tokens().Refresh(ctx))
}

func TestNoRetryWithoutRefreshToken(t *testing.T) {
	f := newFakeUpstream()
	f.validAccess = "fresh"
	client, _ := newTestClient(t, f, nil)

	ctx := context.Background()
	require.NoError(t, client.Tokens().SetAccess(ctx, "stale"))

	_, err := client.UserInfo(ctx)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, KindUnauthorized, apiErr.Kind)

	assert.Equal(t, 1, f.userInfoCalls)
	assert.Equal(t, 0, f.refreshCalls)
}

func TestRetriedCallStill401(t *testing.T) {
	//refreshは成功するが新トークンでも401のまま。再試行は1回で打ち切る。
	f := newFakeUpstream()
	f.validAccess = "never-issued"
	f.nextAccess = "still-bad"

	expired := false
	client, _ := newTestClient(t, f, func() { expired = true })

	ctx := context.Background()
	require.NoError(t, client.Tokens().SetPair(ctx, model.TokenPair{Access: "stale", Refresh: "r1"}))

	_, err := client.UserInfo(ctx)
	require.Error(t, err)

	assert.Equal(t, 2, f.userInfoCalls)
	assert.Equal(t, 1, f.refreshCalls)
	assert.True(t, expired)
	assert.Empty(t, client.Tokens().Refresh(ctx))
}

func TestProactiveRefreshOnExpiredJWT(t *testing.T) {
	f := newFakeUpstream()
	f.validAccess = "fresh"
	f.nextAccess = "fresh"
	client, _ := newTestClient(t, f, nil)

	//期限切れのJWTを保存しておく
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Tokens().SetPair(ctx, model.TokenPair{Access: expiredToken, Refresh: "r1"}))

	user, err := client.UserInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)

	//401を食らう前にrefreshしているのでuser-infoは1回で済む
	assert.Equal(t, 1, f.userInfoCalls)
	assert.Equal(t, 1, f.refreshCalls)
}

func TestNonAuthErrorsPropagate(t *testing.T) {
	e := echo.New()
	e.GET("/products/1/", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "not found"})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	store, err := storage.New(storage.DriverMemory)
	require.NoError(t, err)
	client := NewClient(srv.URL, store)

	_, err = client.Product(context.Background(), "1")
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "not found", apiErr.Message("fallback"))
}
