// Package handler はclothingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wardrobe_backend/internal/api"
	"wardrobe_backend/internal/feature/clothing/domain/entity"
	"wardrobe_backend/internal/feature/clothing/transport/http/dto"
	"wardrobe_backend/internal/feature/clothing/usecase"
	platformhttp "wardrobe_backend/internal/platform/http"
	"wardrobe_backend/internal/shared/imaging"
)

// ClothingUsecase はワードローブ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ClothingUsecase interface {
	Upload(ctx context.Context, in usecase.UploadInput) (*entity.ClothingItem, error)
	List(ctx context.Context) ([]entity.ClothingItem, error)
}

// ClothingHandler はワードローブのHTTPリクエストを処理します。
type ClothingHandler struct {
	uc ClothingUsecase
}

// NewClothingHandler はClothingHandlerの新しいインスタンスを生成します。
func NewClothingHandler(uc ClothingUsecase) *ClothingHandler {
	return &ClothingHandler{uc: uc}
}

// Upload は衣類の写真をメタデータと共に登録し、解析済みのアイテムを返します。
//
// エンドポイント: POST /clothing/upload
// Content-Type: multipart/form-data
// フィールド: image（ファイル、最大10MB）, clothing_type, occasion, season
func (h *ClothingHandler) Upload(c *gin.Context) {
	data, err := platformhttp.ReadFormFile(c, "image", imaging.MaxUploadBytes)
	if err != nil {
		slog.Warn("clothing image missing", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "an image file is required"})
		return
	}

	item, err := h.uc.Upload(c.Request.Context(), usecase.UploadInput{
		ImageData:    data,
		ClothingType: c.PostForm("clothing_type"),
		Occasion:     c.PostForm("occasion"),
		Season:       c.PostForm("season"),
	})
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("clothing upload failed", "error", err)
		} else {
			slog.Warn("clothing upload rejected", "error", err, "remote_addr", c.ClientIP())
		}
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(*item))
}

// List はワードローブの全アイテムを返します。
//
// エンドポイント: GET /clothing/all
func (h *ClothingHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list clothing", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load the wardrobe"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(items))
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidMetadata):
		return http.StatusBadRequest, err.Error()
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
		return http.StatusBadGateway, "failed to upload the image, please try again"
	default:
		return http.StatusInternalServerError, "an unexpected error occurred while processing the clothing image"
	}
}
