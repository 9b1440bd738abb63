package session

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

// recorderは通知された文言を覚えておくだけのNotifier。
type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }

type fakeAuthUpstream struct {
	e *echo.Echo

	loginFails  bool
	validAccess string
}

func newFakeAuthUpstream() *fakeAuthUpstream {
	f := &fakeAuthUpstream{e: echo.New(), validAccess: "access-1"}

	f.e.POST("/auth/login/", func(c echo.Context) error {
		if f.loginFails {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"non_field_errors": []string{"Invalid credentials"},
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"user":   map[string]any{"id": 1, "email": "a@example.com", "is_seller": true},
			"tokens": map[string]string{"access": f.validAccess, "refresh": "refresh-1"},
		})
	})

	f.e.GET("/auth/user-info/", func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "Bearer "+f.validAccess {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "token expired"})
		}
		return c.JSON(http.StatusOK, map[string]any{"id": 1, "email": "a@example.com", "is_staff": true})
	})

	f.e.POST("/auth/token/refresh/", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "refresh invalid"})
	})

	return f
}

func newTestSession(t *testing.T, f *fakeAuthUpstream, n notify.Notifier) (*Session, *api.Client) {
	t.Helper()

	srv := httptest.NewServer(f.e)
	t.Cleanup(srv.Close)

	store, err := storage.New(storage.DriverMemory)
	require.NoError(t, err)

	client := api.NewClient(srv.URL, store)
	return New(client, n), client
}

func TestInitializeWithoutTokensStaysGuest(t *testing.T) {
	s, _ := newTestSession(t, newFakeAuthUpstream(), notify.Nop{})

	s.Initialize(context.Background())

	assert.True(t, s.Initialized())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestInitializeRestoresUserFromStoredTokens(t *testing.T) {
	f := newFakeAuthUpstream()
	s, client := newTestSession(t, f, notify.Nop{})
	ctx := context.Background()

	require.NoError(t, client.Tokens().SetPair(ctx, model.TokenPair{Access: "access-1", Refresh: "refresh-1"}))

	s.Initialize(ctx)

	assert.True(t, s.Initialized())
	require.True(t, s.IsAuthenticated())
	assert.Equal(t, "a@example.com", s.User().Email)
	assert.True(t, s.IsAdmin())
}

func TestInitializeWithDeadTokensClearsThem(t *testing.T) {
	f := newFakeAuthUpstream()
	s, client := newTestSession(t, f, notify.Nop{})
	ctx := context.Background()

	require.NoError(t, client.Tokens().SetPair(ctx, model.TokenPair{Access: "dead", Refresh: "dead"}))

	s.Initialize(ctx)

	//失敗してもゲストとして初期化完了する
	assert.True(t, s.Initialized())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, client.Tokens().Access(ctx))
	assert.Empty(t, client.Tokens().Refresh(ctx))
}

func TestLoginStoresTokensAndIdentity(t *testing.T) {
	f := newFakeAuthUpstream()
	rec := &recorder{}
	s, client := newTestSession(t, f, rec)
	ctx := context.Background()

	res := s.Login(ctx, "a@example.com", "pass")
	require.True(t, res.Success)

	assert.Equal(t, "access-1", client.Tokens().Access(ctx))
	assert.Equal(t, "refresh-1", client.Tokens().Refresh(ctx))
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsSeller())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, []string{"Login successful!"}, rec.successes)
}

func TestLoginFailureExtractsServerMessage(t *testing.T) {
	f := newFakeAuthUpstream()
	f.loginFails = true
	rec := &recorder{}
	s, client := newTestSession(t, f, rec)
	ctx := context.Background()

	res := s.Login(ctx, "a@example.com", "wrong")
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Error)
	assert.Equal(t, []string{"Invalid credentials"}, rec.errors)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, client.Tokens().Access(ctx))
}

func TestLogoutClearsTokensAndIdentity(t *testing.T) {
	f := newFakeAuthUpstream()
	s, client := newTestSession(t, f, notify.Nop{})
	ctx := context.Background()

	require.True(t, s.Login(ctx, "a@example.com", "pass").Success)

	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, client.Tokens().Access(ctx))
	assert.Empty(t, client.Tokens().Refresh(ctx))
}

func TestForceLogoutDropsIdentityOnly(t *testing.T) {
	f := newFakeAuthUpstream()
	s, _ := newTestSession(t, f, notify.Nop{})
	ctx := context.Background()

	require.True(t, s.Login(ctx, "a@example.com", "pass").Success)

	s.ForceLogout()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsSeller())
}
