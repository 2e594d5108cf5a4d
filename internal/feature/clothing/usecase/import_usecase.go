package usecase

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"wardrobe_backend/internal/feature/clothing/domain/entity"
)

// importExtensions は LoadImportDir が読み込む拡張子です。
var importExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// Uploader はワードローブにアイテムを1件追加します。
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (*entity.ClothingItem, error)
}

// ImportItem はインポート対象ディレクトリ内の写真1枚を表します。
type ImportItem struct {
	Path  string
	Input UploadInput
}

// ImportSummary は ImportAll の結果件数です。
type ImportSummary struct {
	Imported int
	Failed   int
}

// ImportUsecase は衣類写真を一括で登録します。
type ImportUsecase struct {
	uploader Uploader
}

// NewImportUsecase はImportUsecaseの新しいインスタンスを生成します。
func NewImportUsecase(uploader Uploader) *ImportUsecase {
	return &ImportUsecase{uploader: uploader}
}

// ImportAll は全アイテムを登録します。失敗したアイテムはログに出力してスキップし、
// ctx がキャンセルされた場合のみ途中で終了します。
func (iu *ImportUsecase) ImportAll(ctx context.Context, items []ImportItem) (ImportSummary, error) {
	var sum ImportSummary
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		item, err := iu.uploader.Upload(ctx, it.Input)
		if err != nil {
			slog.Error("failed to import clothing photo", "path", it.Path, "error", err)
			sum.Failed++
			continue
		}
		slog.Info("clothing photo imported", "path", it.Path, "id", item.ID)
		sum.Imported++
	}
	return sum, nil
}

// LoadImportDir は fsys 直下の <type>_<occasion>_<season>/<file>（例: shirt_office_winter/blue.jpg）
// に置かれた写真を読み込みます。それ以外の場所のファイルは無視し、不正なフォルダ名はエラーとします。
func LoadImportDir(fsys fs.FS) ([]ImportItem, error) {
	var items []ImportItem
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !importExtensions[strings.ToLower(path.Ext(p))] {
			return nil
		}
		dir := path.Dir(p)
		if dir == "." || strings.Contains(dir, "/") {
			return nil
		}

		parts := strings.Split(dir, "_")
		if len(parts) != 3 {
			return fmt.Errorf("%w: folder %q must be named <type>_<occasion>_<season>", ErrInvalidMetadata, dir)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		items = append(items, ImportItem{Path: p, Input: UploadInput{
			ImageData:    data,
			ClothingType: parts[0],
			Occasion:     parts[1],
			Season:       parts[2],
		}})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
