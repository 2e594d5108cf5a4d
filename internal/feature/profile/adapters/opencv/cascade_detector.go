// Package opencv はOpenCVのHaarカスケードによる顔検出器を提供します。
package opencv

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"wardrobe_backend/internal/feature/profile/analysis"
	"wardrobe_backend/internal/shared/imaging"
)

// 正面顔カスケードの検出パラメータ
const (
	ScaleFactor  = 1.1
	MinNeighbors = 5
	MinFaceSize  = 100
)

// DefaultCascadePath はOpenCVパッケージが正面顔モデルを配置する一般的なパスです。
const DefaultCascadePath = "/usr/share/opencv4/haarcascades/haarcascade_frontalface_default.xml"

type cascadeDetector struct {
	mu         sync.Mutex // 分類器は並行利用できないため排他制御
	classifier gocv.CascadeClassifier
}

var _ analysis.FaceDetector = (*cascadeDetector)(nil)

// NewCascadeDetector は path のカスケードモデルを読み込みます。
func NewCascadeDetector(path string) (*cascadeDetector, error) {
	if path == "" {
		path = DefaultCascadePath
	}
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		_ = classifier.Close()
		return nil, fmt.Errorf("failed to load face cascade from %s", path)
	}
	return &cascadeDetector{classifier: classifier}, nil
}

// DetectFaces はグレースケール化した写真でカスケードを実行します。
func (d *cascadeDetector) DetectFaces(ctx context.Context, px *imaging.Pixels) ([]image.Rectangle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := gocv.NewMatFromBytes(px.Height, px.Width, gocv.MatTypeCV8UC3, px.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to create mat: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	code := gocv.ColorRGBToGray
	if px.Order == imaging.OrderBGR {
		code = gocv.ColorBGRToGray
	}
	gocv.CvtColor(mat, &gray, code)

	d.mu.Lock()
	defer d.mu.Unlock()
	faces := d.classifier.DetectMultiScaleWithParams(
		gray, ScaleFactor, MinNeighbors, 0,
		image.Pt(MinFaceSize, MinFaceSize), image.Pt(0, 0),
	)
	return faces, nil
}

// Close はネイティブの分類器を解放します。
func (d *cascadeDetector) Close() error {
	return d.classifier.Close()
}
