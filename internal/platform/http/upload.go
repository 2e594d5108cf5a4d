package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrMissingFile はmultipartフォームに指定フィールドのファイルが無い場合に返されます。
var ErrMissingFile = errors.New("missing file in multipart form")

// ReadFormFile は field に格納されたmultipartファイルを読み込みます。
// 読み込むのは最大 limit+1 バイトで、呼び出し元はボディ全体をバッファせずにサイズ超過を検出できます。
func ReadFormFile(c *gin.Context, field string, limit int64) ([]byte, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMissingFile, field, err)
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}
