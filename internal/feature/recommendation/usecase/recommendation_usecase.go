package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	clothing "wardrobe_backend/internal/feature/clothing/domain/entity"
	profile "wardrobe_backend/internal/feature/profile/domain/entity"
	profileusecase "wardrobe_backend/internal/feature/profile/usecase"
	"wardrobe_backend/internal/feature/recommendation/scoring"
)

// AdvicePromptTemplate は順位付けされたコーディネートへの短いアドバイスを求めるプロンプトです。
// 引数: イベント, 天気, 時間帯, 肌の説明, コーディネートの行
const AdvicePromptTemplate = "You are a personal stylist. In at most three sentences, explain how to wear " +
	"the following wardrobe items for a %s event in %s weather during the %s. The wearer has %s.\n%s"

// WardrobeReader はワードローブを一覧します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type WardrobeReader interface {
	List(ctx context.Context) ([]clothing.ClothingItem, error)
}

// ProfileReader は肌プロフィールを返します。未登録の場合は profileusecase.ErrProfileNotFound を返します。
type ProfileReader interface {
	Get(ctx context.Context) (*profile.SkinProfile, error)
}

// Ranker はワードローブのアイテムを採点し、順位付けします。
type Ranker interface {
	Rank(items []clothing.ClothingItem, c scoring.Context) ([]scoring.ScoredItem, error)
}

// StylingAdvisor はプロンプトから自由文のアドバイスを生成します。
type StylingAdvisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// Request はクライアントから受け取った提案リクエストです。
type Request struct {
	Event      string
	Weather    string
	TimeOfDay  string
	WithAdvice bool
}

// Result はリクエストに対する順位付け済みのコーディネート一覧です。
type Result struct {
	Suggestions []scoring.ScoredItem
	Event       scoring.Event
	Weather     scoring.Weather
	TimeOfDay   scoring.TimeOfDay
	Advice      string // 要求され、アドバイザーが成功した場合のみ設定
}

type recommendationUsecase struct {
	wardrobe WardrobeReader
	profiles ProfileReader
	ranker   Ranker
	advisor  StylingAdvisor // アドバイス無効時は nil
}

// NewRecommendationUsecase はrecommendationUsecaseの新しいインスタンスを生成します。advisor は nil でも構いません。
func NewRecommendationUsecase(wardrobe WardrobeReader, profiles ProfileReader, ranker Ranker, advisor StylingAdvisor) *recommendationUsecase {
	return &recommendationUsecase{wardrobe: wardrobe, profiles: profiles, ranker: ranker, advisor: advisor}
}

// Suggest はリクエストに合わせてワードローブを順位付けします。
// 肌プロフィールが無い場合は肌に関するルールのみ無効になります。
func (u *recommendationUsecase) Suggest(ctx context.Context, req Request) (*Result, error) {
	sc, err := parseRequest(req)
	if err != nil {
		return nil, err
	}

	p, err := u.profiles.Get(ctx)
	switch {
	case errors.Is(err, profileusecase.ErrProfileNotFound):
		slog.Warn("no skin profile found, recommendations will be less personalized")
	case err != nil:
		return nil, fmt.Errorf("failed to load profile: %w", err)
	default:
		if p.SkinTone != "" {
			tone := p.SkinTone
			sc.Tone = &tone
		}
		if p.SkinUndertone != "" {
			undertone := p.SkinUndertone
			sc.Undertone = &undertone
		}
	}

	items, err := u.wardrobe.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wardrobe: %w", err)
	}
	ranked, err := u.ranker.Rank(items, sc)
	if err != nil {
		return nil, err
	}

	res := &Result{Suggestions: ranked, Event: sc.Event, Weather: sc.Weather, TimeOfDay: sc.TimeOfDay}
	if req.WithAdvice && u.advisor != nil {
		advice, err := u.advisor.Advise(ctx, buildPrompt(sc, ranked))
		if err != nil {
			slog.Warn("styling advice unavailable", "error", err)
		} else {
			res.Advice = strings.TrimSpace(advice)
		}
	}

	slog.Info("recommendation generated",
		"event", sc.Event,
		"weather", sc.Weather,
		"time_of_day", sc.TimeOfDay,
		"results", len(ranked),
		"wardrobe_size", len(items),
	)
	return res, nil
}

func parseRequest(req Request) (scoring.Context, error) {
	event, ok := scoring.ParseEvent(req.Event)
	if !ok {
		return scoring.Context{}, fmt.Errorf("%w: unknown event %q", ErrInvalidRequest, req.Event)
	}
	weather, ok := scoring.ParseWeather(req.Weather)
	if !ok {
		return scoring.Context{}, fmt.Errorf("%w: unknown weather %q", ErrInvalidRequest, req.Weather)
	}
	tod, ok := scoring.ParseTimeOfDay(req.TimeOfDay)
	if !ok {
		return scoring.Context{}, fmt.Errorf("%w: unknown time_of_day %q", ErrInvalidRequest, req.TimeOfDay)
	}
	return scoring.Context{Event: event, Weather: weather, TimeOfDay: tod}, nil
}

func buildPrompt(sc scoring.Context, ranked []scoring.ScoredItem) string {
	skin := "no known skin profile"
	if sc.Tone != nil && sc.Undertone != nil {
		skin = fmt.Sprintf("%s skin with a %s undertone", strings.ToLower(string(*sc.Tone)), strings.ToLower(string(*sc.Undertone)))
	}

	var b strings.Builder
	for i, s := range ranked {
		color := "unknown color"
		if s.Item.DominantColor != nil {
			color = strings.ToLower(*s.Item.DominantColor)
		}
		fmt.Fprintf(&b, "%d. %s %s (%s, %s)\n", i+1, color, strings.ToLower(string(s.Item.ClothingType)),
			strings.ToLower(string(s.Item.Occasion)), strings.ToLower(string(s.Item.Season)))
	}

	timeOfDay := "day"
	if sc.TimeOfDay == scoring.TimeNight {
		timeOfDay = "night"
	}
	return fmt.Sprintf(AdvicePromptTemplate, strings.ToLower(string(sc.Event)), strings.ToLower(string(sc.Weather)),
		timeOfDay, skin, b.String())
}
