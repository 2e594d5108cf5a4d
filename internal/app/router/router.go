// Package router はginのルーティングを定義します。
package router

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "wardrobe_backend/internal/feature/auth/transport/handler"
	clothinghandler "wardrobe_backend/internal/feature/clothing/transport/handler"
	profilehandler "wardrobe_backend/internal/feature/profile/transport/handler"
	recommendationhandler "wardrobe_backend/internal/feature/recommendation/transport/handler"
	"wardrobe_backend/internal/platform/http/handler"
	jwtmw "wardrobe_backend/internal/platform/jwt"
	"wardrobe_backend/internal/platform/storage"
)

// Config はルーター全体に関わる設定を保持します。
type Config struct {
	AppName        string
	JWTSecret      string   // 空の場合、フィーチャーのルートは認証不要
	UploadDir      string   // 空でない場合 /uploads で配信
	AllowedOrigins []string // 空の場合、全オリジンを許可
}

// LoadConfigFromEnv は APP_NAME と CORS_ALLOWED_ORIGINS（カンマ区切り）を読み込みます。
// JWTSecret と UploadDir は呼び出し元が設定します。
func LoadConfigFromEnv() Config {
	cfg := Config{AppName: os.Getenv("APP_NAME")}
	if cfg.AppName == "" {
		cfg.AppName = "Wardrobe Recommendation API"
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg
}

// Handlers は各フィーチャーのハンドラーをまとめます。
type Handlers struct {
	Auth           *authhandler.AuthHandler
	Clothing       *clothinghandler.ClothingHandler
	Profile        *profilehandler.ProfileHandler
	Recommendation *recommendationhandler.RecommendationHandler
}

// NewRouter は全ルートを登録したginエンジンを生成します。
func NewRouter(cfg Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), corsMiddleware(cfg.AllowedOrigins))

	// 認証不要
	r.GET("/", handler.Status(cfg.AppName))
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	// オーナー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)
	if cfg.UploadDir != "" {
		r.Static(storage.PublicPrefix, cfg.UploadDir)
	}

	// 認証必須のルート（JWT_SECRET 設定時）
	api := r.Group("/")
	if cfg.JWTSecret != "" {
		api.Use(jwtmw.AuthRequired(cfg.JWTSecret))
	} else {
		slog.Warn("JWT_SECRET is not set, wardrobe routes are not authenticated")
	}
	{
		api.POST("/clothing/upload", h.Clothing.Upload)
		api.GET("/clothing/all", h.Clothing.List)
		api.POST("/user/upload-photo", h.Profile.UploadPhoto)
		api.GET("/user/profile", h.Profile.Get)
		api.POST("/recommendation/suggest", h.Recommendation.Suggest)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AddAllowHeaders("Authorization")
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
