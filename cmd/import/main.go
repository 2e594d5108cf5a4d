// Command import bulk-loads clothing photos into the wardrobe.
//
//	import -dir ./photos
//
// Photos are read from <dir>/<type>_<occasion>_<season>/<file>, e.g.
// ./photos/shirt_office_winter/blue.jpg.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"wardrobe_backend/internal/app/di"
	clothingadapters "wardrobe_backend/internal/feature/clothing/adapters"
	clothinganalysis "wardrobe_backend/internal/feature/clothing/analysis"
	clothingusecase "wardrobe_backend/internal/feature/clothing/usecase"
	"wardrobe_backend/internal/platform/cache"
	platformdb "wardrobe_backend/internal/platform/db"
	platformredis "wardrobe_backend/internal/platform/redis"
	"wardrobe_backend/internal/platform/storage"
	"wardrobe_backend/internal/shared/palette"
)

func main() {
	dir := flag.String("dir", "", "directory of <type>_<occasion>_<season> folders")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall import deadline")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	if *dir == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *dir); err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir string) error {
	items, err := clothingusecase.LoadImportDir(os.DirFS(dir))
	if err != nil {
		return err
	}
	slog.Info("photos found", "dir", dir, "count", len(items))

	db, err := platformdb.OpenDB(platformdb.LoadConfigFromEnv())
	if err != nil {
		return err
	}

	// サーバーがキャッシュした一覧を無効化するためRedisにも接続
	var rdb *redisv9.Client
	if redisCfg := platformredis.LoadConfigFromEnv(); redisCfg.Enabled() {
		if rdb, err = platformredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("Redis unavailable, cached wardrobe listings expire after their ttl", "error", err)
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	store, err := di.NewImageStore(ctx, storage.LoadConfigFromEnv())
	if err != nil {
		return err
	}

	repo := cache.NewCachingClothingRepository(rdb, cache.TTLFromEnv("WARDROBE_CACHE_TTL", cache.DefaultTTL), clothingadapters.NewClothingRepository(db), cache.DefaultNamespace)
	uploader := clothingusecase.NewClothingUsecase(repo, store,
		clothinganalysis.NewExtractor(palette.Default(), clothinganalysis.DefaultSeed))

	sum, err := clothingusecase.NewImportUsecase(uploader).ImportAll(ctx, items)
	slog.Info("import finished", "imported", sum.Imported, "failed", sum.Failed)
	return err
}
