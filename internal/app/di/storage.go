package di

import (
	"context"
	"log/slog"

	"wardrobe_backend/internal/platform/storage"
)

// NewImageStore は cfg.Mode で選択された画像ストアを生成します。
func NewImageStore(ctx context.Context, cfg storage.Config) (storage.ImageStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode == storage.ModeGCS {
		s, err := storage.NewGCSStore(ctx, cfg.Bucket, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		slog.Info("image store ready", "mode", cfg.Mode, "bucket", cfg.Bucket)
		return s, nil
	}
	s, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	slog.Info("image store ready", "mode", cfg.Mode, "dir", cfg.UploadDir)
	return s, nil
}
