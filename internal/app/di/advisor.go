package di

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"wardrobe_backend/internal/feature/recommendation/adapters/gemini"
	"wardrobe_backend/internal/feature/recommendation/usecase"
	"wardrobe_backend/internal/shared/ratelimiter"
)

// DefaultAdvisorRateLimit は1分あたりのGemini呼び出し上限のデフォルト値です。
const DefaultAdvisorRateLimit = 10

// NewStylingAdvisor は GEMINI_ENABLED=true の場合にGeminiのアドバイザーを返し、それ以外は nil を返します。
// GEMINI_RATE_LIMIT で1分あたりの呼び出し回数を制限します。
func NewStylingAdvisor(ctx context.Context) (usecase.StylingAdvisor, error) {
	if os.Getenv("GEMINI_ENABLED") != "true" {
		slog.Info("styling advice disabled")
		return nil, nil
	}

	limit := DefaultAdvisorRateLimit
	if raw := os.Getenv("GEMINI_RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			slog.Warn("invalid GEMINI_RATE_LIMIT, using default", "value", raw, "default", limit)
		} else {
			limit = n
		}
	}

	a, err := gemini.NewAdvisor(ctx, ratelimiter.NewRateLimiter(limit, time.Minute))
	if err != nil {
		return nil, err
	}
	slog.Info("styling advice enabled", "rate_limit_per_minute", limit)
	return a, nil
}
