package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// LocalStore はルーターが配信するディレクトリ配下に画像を書き込みます。
type LocalStore struct {
	root string
}

var _ ImageStore = (*LocalStore)(nil)

// NewLocalStore は必要に応じてルートディレクトリを作成します。
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Root は画像の書き込み先ディレクトリです。
func (s *LocalStore) Root() string { return s.root }

// Save は <root>/<folder>/<uuid><ext> に書き込み、/uploads/<folder>/<name> を返します。
func (s *LocalStore) Save(ctx context.Context, folder string, data []byte) (string, error) {
	if err := checkFolder(folder); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	name := objectName(data)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	url := path.Join(PublicPrefix, folder, name)
	slog.Debug("image stored", "mode", ModeLocal, "url", url, "bytes", len(data))
	return url, nil
}
