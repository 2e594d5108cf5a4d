package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"wardrobe_backend/internal/shared/imaging"
)

// UploadTimeout は1オブジェクトの書き込みのタイムアウトです。
const UploadTimeout = 2 * time.Minute

// objectWriter は指定したContent-Typeでバケットのオブジェクトのwriterを開きます。
type objectWriter func(ctx context.Context, bucket, object, contentType string) io.WriteCloser

// GCSStore はCloud Storageのバケットに画像を書き込みます。
type GCSStore struct {
	bucket        string
	publicBaseURL string
	open          objectWriter
	closeFn       func() error
}

var _ ImageStore = (*GCSStore)(nil)

// NewGCSStore はApplication Default Credentialsを使用してストアを生成します。
func NewGCSStore(ctx context.Context, bucket, publicBaseURL string, opts ...option.ClientOption) (*GCSStore, error) {
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	open := func(ctx context.Context, bucket, object, contentType string) io.WriteCloser {
		w := client.Bucket(bucket).Object(object).NewWriter(ctx)
		w.ContentType = contentType
		return w
	}
	return &GCSStore{bucket: bucket, publicBaseURL: publicBaseURL, open: open, closeFn: client.Close}, nil
}

// Save は wardrobe/<folder>/<uuid><ext> にアップロードし、公開URLを返します。
func (s *GCSStore) Save(ctx context.Context, folder string, data []byte) (string, error) {
	if err := checkFolder(folder); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	name := objectName(data)
	object := path.Join(ObjectPrefix, folder, name)
	w := s.open(ctx, s.bucket, object, imaging.ContentTypeFor(path.Ext(name)))
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: failed to write data to GCS: %w", ErrUpload, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close GCS writer: %w", ErrUpload, err)
	}

	url := s.PublicURL(object)
	slog.Debug("image stored", "mode", ModeGCS, "bucket", s.bucket, "object", object)
	return url, nil
}

// PublicURL はオブジェクトの配信URLを返します。
func (s *GCSStore) PublicURL(object string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + object
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, object)
}

// Close はストレージクライアントを解放します。
func (s *GCSStore) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
