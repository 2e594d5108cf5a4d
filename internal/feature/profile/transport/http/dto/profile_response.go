// Package dto defines the HTTP bodies of the profile feature.
package dto

import (
	"time"

	"wardrobe_backend/internal/feature/profile/domain/entity"
)

// ProfileResponse is the GET /user/profile body.
type ProfileResponse struct {
	ID            uint      `json:"id"`
	PhotoURL      string    `json:"photo_url"`
	SkinTone      string    `json:"skin_tone"`
	SkinUndertone string    `json:"skin_undertone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PhotoUploadResponse is the POST /user/upload-photo body.
type PhotoUploadResponse struct {
	Message       string `json:"message"`
	PhotoURL      string `json:"photo_url"`
	SkinTone      string `json:"skin_tone"`
	SkinUndertone string `json:"skin_undertone"`
}

// FromEntity converts a profile to its response body.
func FromEntity(p *entity.SkinProfile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID,
		PhotoURL:      p.PhotoURL,
		SkinTone:      string(p.SkinTone),
		SkinUndertone: string(p.SkinUndertone),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
