package cache

import (
	"log/slog"
	"os"
	"time"
)

// TTLFromEnv は環境変数 key の期間（例: "90s", "10m"）を返します。
// 未設定または不正な値の場合は def を返します。
func TTLFromEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("invalid cache ttl, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return d
}
