// Package adapters はclothingフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wardrobe_backend/internal/feature/clothing/domain/entity"
	"wardrobe_backend/internal/feature/clothing/usecase"
)

type clothingGorm struct {
	db *gorm.DB
}

var _ usecase.ClothingRepository = (*clothingGorm)(nil)

// NewClothingRepository はgormによるClothingRepositoryを生成します。
func NewClothingRepository(db *gorm.DB) *clothingGorm {
	return &clothingGorm{db: db}
}

// ClothingModel は clothing_items テーブルの行を表します。
type ClothingModel struct {
	ID             uint    `gorm:"primaryKey"`
	ImageURL       string  `gorm:"size:1024;not null"`
	DominantColor  *string `gorm:"size:32"`
	SecondaryColor *string `gorm:"size:32"`
	ClothingType   string  `gorm:"size:32;not null"`
	Occasion       string  `gorm:"size:32;not null;index"`
	Season         string  `gorm:"size:16;not null"`
	CreatedAt      time.Time
}

func (ClothingModel) TableName() string {
	return "clothing_items"
}

func toModel(e *entity.ClothingItem) ClothingModel {
	return ClothingModel{
		ID:             e.ID,
		ImageURL:       e.ImageURL,
		DominantColor:  e.DominantColor,
		SecondaryColor: e.SecondaryColor,
		ClothingType:   string(e.ClothingType),
		Occasion:       string(e.Occasion),
		Season:         string(e.Season),
		CreatedAt:      e.CreatedAt,
	}
}

func toEntity(m ClothingModel) entity.ClothingItem {
	return entity.ClothingItem{
		ID:             m.ID,
		ImageURL:       m.ImageURL,
		DominantColor:  m.DominantColor,
		SecondaryColor: m.SecondaryColor,
		ClothingType:   entity.ClothingType(m.ClothingType),
		Occasion:       entity.Occasion(m.Occasion),
		Season:         entity.Season(m.Season),
		CreatedAt:      m.CreatedAt,
	}
}

func (r *clothingGorm) Create(ctx context.Context, item *entity.ClothingItem) error {
	m := toModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	item.CreatedAt = m.CreatedAt
	return nil
}

func (r *clothingGorm) List(ctx context.Context) ([]entity.ClothingItem, error) {
	var rows []ClothingModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.ClothingItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
