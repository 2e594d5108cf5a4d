// Package redis はワードローブキャッシュで使用するRedisクライアントを生成します。
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// PingTimeout は起動時の接続確認のタイムアウトです。
const PingTimeout = 5 * time.Second

// Config はRedisの接続設定を保持します。
type Config struct {
	Host     string
	Port     string
	Password string
}

// LoadConfigFromEnv は REDIS_HOST, REDIS_PORT, REDIS_PASSWORD から設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if cfg.Port == "" {
		cfg.Port = "6379"
	}
	return cfg
}

// Enabled はRedisホストが設定されているかを返します。
func (c Config) Enabled() bool { return c.Host != "" }

// Addr is host:port.
func (c Config) Addr() string { return c.Host + ":" + c.Port }

// NewRedisClient はRedisに接続し、疎通を確認します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
