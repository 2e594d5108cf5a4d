// Package di は設定に応じて具体的なアダプターを生成するファクトリーを提供します。
package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"wardrobe_backend/internal/feature/profile/adapters/opencv"
	"wardrobe_backend/internal/feature/profile/adapters/vision"
	"wardrobe_backend/internal/feature/profile/analysis"
)

// FACE_DETECTOR で選択する顔検出の実装
const (
	DetectorOpenCV = "opencv"
	DetectorVision = "vision"
)

// ClosingDetector はネイティブまたはネットワークのリソースを保持する顔検出器です。
type ClosingDetector interface {
	analysis.FaceDetector
	Close() error
}

// NewFaceDetector は FACE_DETECTOR（デフォルト opencv）で指定された検出器を生成します。
// OpenCVのカスケードは FACE_CASCADE_PATH から読み込みます。
func NewFaceDetector(ctx context.Context) (ClosingDetector, error) {
	name := strings.ToLower(strings.TrimSpace(os.Getenv("FACE_DETECTOR")))
	if name == "" {
		name = DetectorOpenCV
	}

	switch name {
	case DetectorOpenCV:
		path := os.Getenv("FACE_CASCADE_PATH")
		if path == "" {
			path = opencv.DefaultCascadePath
		}
		d, err := opencv.NewCascadeDetector(path)
		if err != nil {
			return nil, err
		}
		slog.Info("face detector ready", "backend", name, "cascade", path)
		return d, nil
	case DetectorVision:
		d, err := vision.NewVisionFaceDetector(ctx)
		if err != nil {
			return nil, err
		}
		slog.Info("face detector ready", "backend", name)
		return d, nil
	default:
		return nil, fmt.Errorf("unknown FACE_DETECTOR %q (want %s or %s)", name, DetectorOpenCV, DetectorVision)
	}
}
