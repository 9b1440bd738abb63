package middleware

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront/internal/api"
	"storefront/internal/cart"
	"storefront/internal/notify"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/internal/wishlist"
)

const (
	SessionCookieName = "sid"
	CtxBundleKey      = "session_bundle" // *Bundle
)

// Bundleは1セッションぶんのコントローラ一式。
// セッション間で共有される隠れたシングルトンは持たない。
type Bundle struct {
	//セッション内の操作を直列化する（同一セッションの並行変更は不支持）
	mu sync.Mutex

	Session  *session.Session
	Cart     *cart.Reconciler
	Wishlist *wishlist.Reconciler
	Client   *api.Client
}

// ManagerはセッションIDごとにBundleを遅延生成して保持する。
type Manager struct {
	mu      sync.Mutex
	bundles map[string]*Bundle

	baseURL  string
	store    storage.Store
	notifier notify.Notifier
	secure   bool
}

func NewManager(baseURL string, store storage.Store, notifier notify.Notifier, secure bool) *Manager {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Manager{
		bundles:  make(map[string]*Bundle),
		baseURL:  baseURL,
		store:    store,
		notifier: notifier,
		secure:   secure,
	}
}

func (m *Manager) bundle(sid string) *Bundle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.bundles[sid]; ok {
		return b
	}

	//トークンとゲストblobはセッションごとのキー空間に置く
	ns := storage.Namespace(m.store, "sess:"+sid+":")

	var sess *session.Session
	client := api.NewClient(m.baseURL, ns, api.WithAuthExpiredHook(func() {
		if sess != nil {
			sess.ForceLogout()
		}
	}))
	sess = session.New(client, m.notifier)

	b := &Bundle{
		Session:  sess,
		Cart:     cart.New(sess, client, ns, m.notifier),
		Wishlist: wishlist.New(sess, client, ns, m.notifier),
		Client:   client,
	}
	m.bundles[sid] = b
	return b
}

// Middlewareはsidクッキーを解決し、リクエストにBundleを結び付ける。
// 初回はSession.Initializeが終わるまでハンドラに進まない。
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				sid = cookie.Value
			}
			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					Secure:   m.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			b := m.bundle(sid)
			b.mu.Lock()
			defer b.mu.Unlock()

			if !b.Session.Initialized() {
				ctx := c.Request().Context()
				b.Session.Initialize(ctx)
				b.Cart.Hydrate(ctx)
				b.Wishlist.Hydrate(ctx)
			}

			c.Set(CtxBundleKey, b)
			return next(c)
		}
	}
}

// BundleFromはハンドラ側の取り出し口。
func BundleFrom(c echo.Context) (*Bundle, bool) {
	b, ok := c.Get(CtxBundleKey).(*Bundle)
	return b, ok
}
