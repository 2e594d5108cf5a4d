// Package handler はヘルスチェックとサービス状態のエンドポイントを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wardrobe_backend/internal/api"
)

// Health は GET/HEAD/OPTIONS の /healthz にキャッシュ無しで応答します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Status はアプリケーション名を返すルートハンドラーを返します。
func Status(app string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, api.StatusResponse{Status: "healthy", App: app})
	}
}
