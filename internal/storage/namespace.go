package storage

import "context"

// namespacedはキーにプレフィックスを付けるラッパー。
// セッションごとにキー空間を分けるのに使う。
type namespaced struct {
	inner  Store
	prefix string
}

// Namespaceはprefix付きのStoreビューを返す。Closeは内側に伝えない
// （内側のStoreは複数セッションで共有されるため）。
func Namespace(inner Store, prefix string) Store {
	return &namespaced{inner: inner, prefix: prefix}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Close() error { return nil }
