package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	APIBaseURL string // バックエンドAPIのベースURL（http://localhost:8000/api）

	StoreDriver string // ローカル保存のドライバ（memory/file/redis）
	DataDir     string // fileドライバの保存先
	RedisAddr   string // redisドライバの接続先
	RedisPass   string
	RedisDB     int

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		StoreDriver: os.Getenv("STORE_DRIVER"),
		DataDir:     os.Getenv("DATA_DIR"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		GoEnv:       os.Getenv("GO_ENV"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB must be number: %w", err)
		}
		cfg.RedisDB = db
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = "memory"
	}
	if cfg.StoreDriver == "file" && cfg.DataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR is required for file driver")
	}
	if cfg.StoreDriver == "redis" && cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("REDIS_ADDR is required for redis driver")
	}
	if cfg.GoEnv == "" {
		cfg.GoEnv = "dev"
	}

	return cfg, nil
}
