// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wardrobe_backend/internal/api"
	"wardrobe_backend/internal/feature/profile/domain/entity"
	"wardrobe_backend/internal/feature/profile/transport/http/dto"
	"wardrobe_backend/internal/feature/profile/usecase"
	platformhttp "wardrobe_backend/internal/platform/http"
	"wardrobe_backend/internal/shared/imaging"
)

// ProfileUsecase はプロフィール操作のユースケースを定義します。
type ProfileUsecase interface {
	UploadPhoto(ctx context.Context, data []byte) (*entity.SkinProfile, error)
	Get(ctx context.Context) (*entity.SkinProfile, error)
}

// ProfileHandler はユーザープロフィールのHTTPリクエストを処理します。
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// UploadPhoto は顔写真を解析し、肌のプロフィールを保存します。
//
// エンドポイント: POST /user/upload-photo
// Content-Type: multipart/form-data
// フィールド: photo（ファイル、最大10MB）
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	data, err := platformhttp.ReadFormFile(c, "photo", imaging.MaxUploadBytes)
	if err != nil {
		slog.Warn("profile photo missing", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "a photo file is required"})
		return
	}

	p, err := h.uc.UploadPhoto(c.Request.Context(), data)
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("photo upload failed", "error", err)
		} else {
			slog.Warn("photo upload rejected", "error", err, "remote_addr", c.ClientIP())
		}
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, dto.PhotoUploadResponse{
		Message:       "Photo analyzed successfully",
		PhotoURL:      p.PhotoURL,
		SkinTone:      string(p.SkinTone),
		SkinUndertone: string(p.SkinUndertone),
	})
}

// Get は保存済みの肌プロフィールを返します。
//
// エンドポイント: GET /user/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.uc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrProfileNotFound.Error()})
			return
		}
		slog.Error("failed to load profile", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load the profile"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(p))
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, imaging.ErrEmptyUpload):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, imaging.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, imaging.ErrImageProcessing):
		if msg := imaging.UserMessage(err); msg != "" {
			return http.StatusUnprocessableEntity, msg
		}
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, usecase.ErrImageUpload):
		return http.StatusBadGateway, "failed to upload the photo, please try again"
	default:
		return http.StatusInternalServerError, "an unexpected error occurred while processing your photo"
	}
}
