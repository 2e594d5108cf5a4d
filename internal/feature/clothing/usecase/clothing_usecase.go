package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"wardrobe_backend/internal/feature/clothing/analysis"
	"wardrobe_backend/internal/feature/clothing/domain/entity"
	"wardrobe_backend/internal/shared/imaging"
)

// ImageFolder は衣類写真を保存する画像ストアのフォルダです。
const ImageFolder = "clothing"

// ClothingRepository はワードローブの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ClothingRepository interface {
	// Create はアイテムを保存し、ID と CreatedAt を設定します。
	Create(ctx context.Context, item *entity.ClothingItem) error
	// List は全アイテムを登録順に返します。
	List(ctx context.Context) ([]entity.ClothingItem, error)
}

// ImageStore はアップロード画像を保存し、公開URLを返します。
type ImageStore interface {
	Save(ctx context.Context, folder string, data []byte) (string, error)
}

// ColorExtractor は衣類画像の主要な色を判定します。
type ColorExtractor interface {
	ClothingColors(px *imaging.Pixels) (analysis.Colors, error)
}

// UploadInput は衣類の写真とアップロード時のメタデータです。
type UploadInput struct {
	ImageData    []byte
	ClothingType string
	Occasion     string
	Season       string
}

type clothingUsecase struct {
	repo   ClothingRepository
	store  ImageStore
	colors ColorExtractor
}

// NewClothingUsecase はclothingUsecaseの新しいインスタンスを生成します。
func NewClothingUsecase(repo ClothingRepository, store ImageStore, colors ColorExtractor) *clothingUsecase {
	return &clothingUsecase{repo: repo, store: store, colors: colors}
}

// Upload はメタデータを検証して衣類の色を抽出し、画像を保存してアイテムを登録します。
//
// 解析は画像の保存前に行うため、解析に失敗した写真はストアに残りません。
func (u *clothingUsecase) Upload(ctx context.Context, in UploadInput) (*entity.ClothingItem, error) {
	ct, ok := entity.ParseClothingType(in.ClothingType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown clothing_type %q", ErrInvalidMetadata, in.ClothingType)
	}
	occasion, ok := entity.ParseOccasion(in.Occasion)
	if !ok {
		return nil, fmt.Errorf("%w: unknown occasion %q", ErrInvalidMetadata, in.Occasion)
	}
	season, ok := entity.ParseSeason(in.Season)
	if !ok {
		return nil, fmt.Errorf("%w: unknown season %q", ErrInvalidMetadata, in.Season)
	}
	if err := imaging.CheckUpload(in.ImageData); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(in.ImageData)
	if err != nil {
		return nil, err
	}
	resized := imaging.Resize(img, imaging.ClothingResizeWidth, imaging.ClothingResizeHeight)
	colors, err := u.colors.ClothingColors(imaging.FromImage(resized))
	if err != nil {
		return nil, err
	}

	url, err := u.store.Save(ctx, ImageFolder, in.ImageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageUpload, err)
	}

	primary := colors.Primary
	item := &entity.ClothingItem{
		ImageURL:       url,
		DominantColor:  &primary,
		SecondaryColor: colors.Secondary,
		ClothingType:   ct,
		Occasion:       occasion,
		Season:         season,
	}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save clothing item: %w", err)
	}

	slog.Info("clothing uploaded",
		"id", item.ID,
		"type", item.ClothingType,
		"primary_color", primary,
		"secondary_color", derefOr(colors.Secondary, ""),
	)
	return item, nil
}

// List はワードローブ全体を登録順に返します。
func (u *clothingUsecase) List(ctx context.Context) ([]entity.ClothingItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clothing items: %w", err)
	}
	return items, nil
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
