// Package storage はアップロード画像をローカルディスクまたはGoogle Cloud Storageに保存します。
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"wardrobe_backend/internal/shared/imaging"
)

// ErrUpload は画像を書き込めなかった場合に返されます。
var ErrUpload = errors.New("image upload failed")

// ストレージモード
const (
	ModeLocal = "local"
	ModeGCS   = "gcs"
)

const (
	// DefaultUploadDir は UPLOAD_DIR 未設定時のローカル保存先です。
	DefaultUploadDir = "uploads"
	// PublicPrefix はローカル保存した画像をルーターが配信するURLパスです。
	PublicPrefix = "/uploads"
	// ObjectPrefix は全GCSオブジェクト名の先頭に付与されます。
	ObjectPrefix = "wardrobe"
)

// Config は画像ストレージの設定を保持します。
type Config struct {
	Mode          string
	UploadDir     string
	Bucket        string
	PublicBaseURL string
}

// LoadConfigFromEnv は STORAGE_MODE, UPLOAD_DIR, GCS_BUCKET_NAME, GCS_PUBLIC_BASE_URL を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Mode:          strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_MODE"))),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		Bucket:        os.Getenv("GCS_BUCKET_NAME"),
		PublicBaseURL: strings.TrimRight(strings.TrimSpace(os.Getenv("GCS_PUBLIC_BASE_URL")), "/"),
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeLocal
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = DefaultUploadDir
	}
	return cfg
}

// Validate は選択されたモードに必要な設定があるかを検証します。
func (c Config) Validate() error {
	switch c.Mode {
	case ModeLocal:
		if c.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR must not be empty")
		}
	case ModeGCS:
		if c.Bucket == "" {
			return fmt.Errorf("missing env var GCS_BUCKET_NAME")
		}
	default:
		return fmt.Errorf("unknown STORAGE_MODE %q (want %s or %s)", c.Mode, ModeLocal, ModeGCS)
	}
	return nil
}

// objectName は判定した拡張子を保持した新しいファイル名を返します。
func objectName(data []byte) string {
	return uuid.NewString() + imaging.ExtensionFor(data)
}

func checkFolder(folder string) error {
	if folder == "" || strings.Contains(folder, "..") || strings.ContainsAny(folder, `/\`) {
		return fmt.Errorf("%w: invalid folder %q", ErrUpload, folder)
	}
	return nil
}

// ImageStore は画像をフォルダに保存し、公開URLを返します。
type ImageStore interface {
	Save(ctx context.Context, folder string, data []byte) (string, error)
}
