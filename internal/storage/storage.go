// Package storageはクライアント側の永続キーバリューストア。
// ブラウザのlocalStorage相当で、トークンとゲストカート等のJSON blobを保持する。
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("storage: key not found")
	ErrInvalidDriver = errors.New("storage: invalid driver")
	ErrInvalidConfig = errors.New("storage: invalid config")
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
