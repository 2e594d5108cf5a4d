package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"wardrobe_backend/internal/feature/profile/analysis"
	"wardrobe_backend/internal/feature/profile/domain/entity"
	"wardrobe_backend/internal/shared/imaging"
)

// ImageFolder は顔写真を保存する画像ストアのフォルダです。
const ImageFolder = "user-photos"

// ProfileRepository は唯一の肌プロフィールを永続化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type ProfileRepository interface {
	// Get は保存済みのプロフィールを返します。未登録の場合は ErrProfileNotFound を返します。
	Get(ctx context.Context) (*entity.SkinProfile, error)
	// Save はプロフィールを作成または上書きし、ID とタイムスタンプを設定します。
	Save(ctx context.Context, p *entity.SkinProfile) error
}

// ImageStore はアップロード画像を保存し、公開URLを返します。
type ImageStore interface {
	Save(ctx context.Context, folder string, data []byte) (string, error)
}

// SkinAnalyzer は顔写真から肌のトーンとアンダートーンを判定します。
type SkinAnalyzer interface {
	Analyze(ctx context.Context, px *imaging.Pixels) (analysis.Result, error)
}

type profileUsecase struct {
	repo     ProfileRepository
	store    ImageStore
	analyzer SkinAnalyzer
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(repo ProfileRepository, store ImageStore, analyzer SkinAnalyzer) *profileUsecase {
	return &profileUsecase{repo: repo, store: store, analyzer: analyzer}
}

// UploadPhoto は顔写真を解析して保存し、肌プロフィールを上書きします。
func (u *profileUsecase) UploadPhoto(ctx context.Context, data []byte) (*entity.SkinProfile, error) {
	if err := imaging.CheckUpload(data); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}
	res, err := u.analyzer.Analyze(ctx, imaging.FromImage(img))
	if err != nil {
		return nil, err
	}

	url, err := u.store.Save(ctx, ImageFolder, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageUpload, err)
	}

	p := &entity.SkinProfile{PhotoURL: url, SkinTone: res.Tone, SkinUndertone: res.Undertone}
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	slog.Info("user photo analyzed",
		"tone", p.SkinTone,
		"undertone", p.SkinUndertone,
		"lightness", res.Stats.L,
		"b", res.Stats.B,
	)
	return p, nil
}

// Get は現在の肌プロフィールを返します。
func (u *profileUsecase) Get(ctx context.Context) (*entity.SkinProfile, error) {
	return u.repo.Get(ctx)
}
