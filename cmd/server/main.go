package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"wardrobe_backend/internal/app/di"
	"wardrobe_backend/internal/app/router"
	authadapters "wardrobe_backend/internal/feature/auth/adapters"
	authhandler "wardrobe_backend/internal/feature/auth/transport/handler"
	authusecase "wardrobe_backend/internal/feature/auth/usecase"
	clothingadapters "wardrobe_backend/internal/feature/clothing/adapters"
	clothinganalysis "wardrobe_backend/internal/feature/clothing/analysis"
	clothinghandler "wardrobe_backend/internal/feature/clothing/transport/handler"
	clothingusecase "wardrobe_backend/internal/feature/clothing/usecase"
	profileadapters "wardrobe_backend/internal/feature/profile/adapters"
	profileanalysis "wardrobe_backend/internal/feature/profile/analysis"
	profilehandler "wardrobe_backend/internal/feature/profile/transport/handler"
	profileusecase "wardrobe_backend/internal/feature/profile/usecase"
	"wardrobe_backend/internal/feature/recommendation/scoring"
	recommendationhandler "wardrobe_backend/internal/feature/recommendation/transport/handler"
	recommendationusecase "wardrobe_backend/internal/feature/recommendation/usecase"
	"wardrobe_backend/internal/platform/cache"
	platformdb "wardrobe_backend/internal/platform/db"
	jwtmw "wardrobe_backend/internal/platform/jwt"
	platformredis "wardrobe_backend/internal/platform/redis"
	"wardrobe_backend/internal/platform/storage"
	"wardrobe_backend/internal/shared/palette"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	setupLogger()

	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := platformdb.OpenDB(platformdb.LoadConfigFromEnv())
	if err != nil {
		return err
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if redisCfg := platformredis.LoadConfigFromEnv(); redisCfg.Enabled() {
		if c, err := platformredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			rdb = c
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Adapter
	storageCfg := storage.LoadConfigFromEnv()
	store, err := di.NewImageStore(ctx, storageCfg)
	if err != nil {
		return err
	}
	detector, err := di.NewFaceDetector(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = detector.Close() }()
	advisor, err := di.NewStylingAdvisor(ctx)
	if err != nil {
		return err
	}

	registry := palette.Default()
	// Repository（衣類はRedisキャッシュでラップ）
	clothingRepo := cache.NewCachingClothingRepository(rdb, cache.TTLFromEnv("WARDROBE_CACHE_TTL", cache.DefaultTTL),
		clothingadapters.NewClothingRepository(db), cache.DefaultNamespace)
	profileRepo := profileadapters.NewProfileRepository(db)
	userRepo := authadapters.NewUserRepository(db)
	jwtCfg := jwtmw.LoadConfigFromEnv()

	// Usecase
	clothingUC := clothingusecase.NewClothingUsecase(clothingRepo, store,
		clothinganalysis.NewExtractor(registry, clothinganalysis.DefaultSeed))
	profileUC := profileusecase.NewProfileUsecase(profileRepo, store, profileanalysis.NewSkinAnalyzer(detector))
	recommendationUC := recommendationusecase.NewRecommendationUsecase(clothingRepo, profileRepo,
		scoring.NewScorer(registry), advisor)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.Expiration))

	// ルータ生成
	routerCfg := router.LoadConfigFromEnv()
	routerCfg.JWTSecret = jwtCfg.Secret
	if storageCfg.Mode == storage.ModeLocal {
		routerCfg.UploadDir = storageCfg.UploadDir
	}
	r := router.NewRouter(routerCfg, router.Handlers{
		Auth:           authhandler.NewAuthHandler(authUC),
		Clothing:       clothinghandler.NewClothingHandler(clothingUC),
		Profile:        profilehandler.NewProfileHandler(profileUC),
		Recommendation: recommendationhandler.NewRecommendationHandler(recommendationUC),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
