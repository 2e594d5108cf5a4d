// Package gemini はGoogle Gemini APIを利用したスタイリングアドバイザーを提供します。
package gemini

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"wardrobe_backend/internal/feature/recommendation/usecase"
	platformhttp "wardrobe_backend/internal/platform/http"
	"wardrobe_backend/internal/shared/ratelimiter"
)

const (
	// DefaultModel は GEMINI_MODEL 未設定時に使用するモデルです。
	DefaultModel = "gemini-2.5-flash"
	// RequestTimeout は1回の生成呼び出しのタイムアウトです。
	RequestTimeout = 30 * time.Second
)

// generator はアドバイザーが使用するgenaiクライアントの機能です。
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Advisor はGeminiでスタイリングのアドバイスを生成します。
type Advisor struct {
	models  generator
	model   string
	limiter ratelimiter.Limiter
}

var _ usecase.StylingAdvisor = (*Advisor)(nil)

// NewAdvisor はAdvisorを生成します。認証情報は環境変数から取得します:
// GEMINI_API_KEY / GOOGLE_API_KEY、またはVertex AIの場合は GOOGLE_GENAI_USE_VERTEXAI と
// GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION。
func NewAdvisor(ctx context.Context, limiter ratelimiter.Limiter) (*Advisor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPClient: platformhttp.NewHTTPClient(RequestTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return newAdvisor(client.Models, model, limiter), nil
}

func newAdvisor(models generator, model string, limiter ratelimiter.Limiter) *Advisor {
	if limiter == nil {
		limiter = ratelimiter.NewRateLimiter(0, 0)
	}
	return &Advisor{models: models, model: model, limiter: limiter}
}

// Advise はプロンプトをモデルに送信し、生成されたテキストを返します。
func (a *Advisor) Advise(ctx context.Context, prompt string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini rate limit wait: %w", err)
	}
	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}
