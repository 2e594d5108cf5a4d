// Package adapters はprofileフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wardrobe_backend/internal/feature/profile/domain/entity"
	"wardrobe_backend/internal/feature/profile/usecase"
)

type profileGorm struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileRepository はgormによるProfileRepositoryを生成します。
func NewProfileRepository(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

// ProfileID は skin_profiles の唯一の行の主キーです。
const ProfileID uint = 1

// ProfileModel は skin_profiles テーブルの行を表します。行は最大1件です。
type ProfileModel struct {
	ID            uint   `gorm:"primaryKey"`
	PhotoURL      string `gorm:"size:1024"`
	SkinTone      string `gorm:"size:16"`
	SkinUndertone string `gorm:"size:16"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProfileModel) TableName() string {
	return "skin_profiles"
}

func toEntity(m ProfileModel) *entity.SkinProfile {
	return &entity.SkinProfile{
		ID:            m.ID,
		PhotoURL:      m.PhotoURL,
		SkinTone:      entity.SkinTone(m.SkinTone),
		SkinUndertone: entity.SkinUndertone(m.SkinUndertone),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *profileGorm) Get(ctx context.Context) (*entity.SkinProfile, error) {
	var m ProfileModel
	if err := r.db.WithContext(ctx).First(&m, ProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return toEntity(m), nil
}

// Save は唯一の行をupsertします。同時に初回アップロードされても行は1件のままです。
func (r *profileGorm) Save(ctx context.Context, p *entity.SkinProfile) error {
	m := ProfileModel{
		ID:            ProfileID,
		PhotoURL:      p.PhotoURL,
		SkinTone:      string(p.SkinTone),
		SkinUndertone: string(p.SkinUndertone),
	}
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"photo_url", "skin_tone", "skin_undertone", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return err
	}
	// created_at は初回アップロード時の値を保持
	saved, err := r.Get(ctx)
	if err != nil {
		return err
	}
	*p = *saved
	return nil
}
