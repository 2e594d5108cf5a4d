// Package handler はrecommendationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wardrobe_backend/internal/api"
	"wardrobe_backend/internal/feature/recommendation/scoring"
	"wardrobe_backend/internal/feature/recommendation/transport/http/dto"
	"wardrobe_backend/internal/feature/recommendation/usecase"
)

// RecommendationUsecase はコーディネート提案のユースケースを定義します。
type RecommendationUsecase interface {
	Suggest(ctx context.Context, req usecase.Request) (*usecase.Result, error)
}

// RecommendationHandler はコーディネート提案のHTTPリクエストを処理します。
type RecommendationHandler struct {
	uc RecommendationUsecase
}

// NewRecommendationHandler はRecommendationHandlerの新しいインスタンスを生成します。
func NewRecommendationHandler(uc RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// Suggest はイベント・天気・時間帯に合わせてワードローブを順位付けします。
//
// エンドポイント: POST /recommendation/suggest
// ボディ: {"event": "OFFICE", "weather": "COLD", "time_of_day": "NIGHT", "with_advice": false}
func (h *RecommendationHandler) Suggest(c *gin.Context) {
	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid recommendation request", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "event, weather and time_of_day are required"})
		return
	}

	res, err := h.uc.Suggest(c.Request.Context(), req.ToUsecase())
	if err != nil {
		var inputErr *scoring.InputError
		switch {
		case errors.Is(err, usecase.ErrInvalidRequest):
			slog.Warn("invalid recommendation request", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.As(err, &inputErr):
			slog.Warn("recommendation rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: inputErr.Message})
		default:
			slog.Error("recommendation failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "an unexpected error occurred while generating recommendations"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromResult(res))
}
