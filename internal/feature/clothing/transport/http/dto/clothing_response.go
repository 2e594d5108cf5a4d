// Package dto はclothingフィーチャーのHTTPレスポンスを定義します。
package dto

import (
	"time"

	"wardrobe_backend/internal/feature/clothing/domain/entity"
)

// ClothingResponse はワードローブのアイテムのJSON表現です。
type ClothingResponse struct {
	ID             uint      `json:"id"`
	ImageURL       string    `json:"image_url"`
	DominantColor  *string   `json:"dominant_color"`
	SecondaryColor *string   `json:"secondary_color"`
	ClothingType   string    `json:"clothing_type"`
	Occasion       string    `json:"occasion"`
	Season         string    `json:"season"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromEntity はアイテムをレスポンスに変換します。
func FromEntity(e entity.ClothingItem) ClothingResponse {
	return ClothingResponse{
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

// FromEntities はスライスを変換します。nil は返しません。
func FromEntities(items []entity.ClothingItem) []ClothingResponse {
	out := make([]ClothingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromEntity(it))
	}
	return out
}
