package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/notify"
	"storefront/internal/server"
	"storefront/internal/storage"
)

func main() {
	//.envは無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	store, err := newStore(cfg)
	if err != nil {
		slog.Error("storage init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	notifier := notify.NewLogNotifier(logger)

	sessions := middleware.NewManager(cfg.APIBaseURL, store, notifier, cfg.GoEnv == "prod")

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, sessions); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newStore(cfg config.Config) (storage.Store, error) {
	switch storage.Driver(cfg.StoreDriver) {
	case storage.DriverFile:
		return storage.New(storage.DriverFile, storage.WithDataDir(cfg.DataDir))

	case storage.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		return storage.New(storage.DriverRedis, storage.WithRedisClient(client))

	default:
		return storage.New(storage.DriverMemory)
	}
}
