package storage

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Driverはストアの種別。
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
	DriverRedis  Driver = "redis"
)

type storeConfig struct {
	dataDir     string
	redisClient *redis.Client
	redisTTL    time.Duration
}

type Option func(*storeConfig)

func WithDataDir(dir string) Option {
	return func(c *storeConfig) { c.dataDir = dir }
}

func WithRedisClient(client *redis.Client) Option {
	return func(c *storeConfig) { c.redisClient = client }
}

func WithRedisTTL(ttl time.Duration) Option {
	return func(c *storeConfig) { c.redisTTL = ttl }
}

// Newはdriverに応じたStoreを返す。
// fileはWithDataDir、redisはWithRedisClientが必須。
func New(driver Driver, opts ...Option) (Store, error) {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch driver {
	case DriverMemory:
		return newMemoryStore(), nil

	case DriverFile:
		if cfg.dataDir == "" {
			return nil, ErrInvalidConfig
		}
		return newFileStore(cfg.dataDir)

	case DriverRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ttl := cfg.redisTTL
		if ttl <= 0 {
			ttl = 30 * 24 * time.Hour
		}
		return &redisStore{client: cfg.redisClient, ttl: ttl}, nil

	default:
		return nil, ErrInvalidDriver
	}
}
