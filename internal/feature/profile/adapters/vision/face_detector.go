// Package vision はGoogle Cloud Vision APIを利用した顔検出器を提供します。
package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"wardrobe_backend/internal/feature/profile/analysis"
	"wardrobe_backend/internal/shared/imaging"
)

// MaxFaces は1枚の写真で要求する顔の最大数です。
const MaxFaces = 10

// VisionFaceDetector は FACE_DETECTION 機能で顔を検出します。
type VisionFaceDetector struct {
	client *gvision.ImageAnnotatorClient
}

var _ analysis.FaceDetector = (*VisionFaceDetector)(nil)

// NewVisionFaceDetector はApplication Default Credentialsを使用して検出器を生成します。
func NewVisionFaceDetector(ctx context.Context) (*VisionFaceDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionFaceDetector{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionFaceDetector) Close() error {
	return v.client.Close()
}

// DetectFaces は写真をPNGで送信し、顔の矩形（fdBoundingPoly）をレスポンス順に返します。
func (v *VisionFaceDetector) DetectFaces(ctx context.Context, px *imaging.Pixels) ([]image.Rectangle, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, px.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode photo: %w", err)
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: buf.Bytes()},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_FACE_DETECTION, MaxResults: MaxFaces},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}
	return facesFromResponse(resp)
}

func facesFromResponse(resp *visionpb.BatchAnnotateImagesResponse) ([]image.Rectangle, error) {
	if resp == nil || len(resp.Responses) == 0 {
		return nil, nil
	}
	r := resp.Responses[0]
	if r.Error != nil {
		return nil, fmt.Errorf("vision API error: %s", r.Error.Message)
	}

	faces := make([]image.Rectangle, 0, len(r.FaceAnnotations))
	for _, f := range r.FaceAnnotations {
		poly := f.FdBoundingPoly
		if poly == nil {
			poly = f.BoundingPoly
		}
		if rect, ok := rectFromPoly(poly); ok {
			faces = append(faces, rect)
		}
	}
	return faces, nil
}

// rectFromPoly はポリゴンの頂点を囲む矩形を返します。
func rectFromPoly(bp *visionpb.BoundingPoly) (image.Rectangle, bool) {
	if bp == nil {
		return image.Rectangle{}, false
	}
	var (
		rect image.Rectangle
		seen bool
	)
	for _, v := range bp.Vertices {
		if v == nil {
			continue
		}
		p := image.Pt(int(v.X), int(v.Y))
		if !seen {
			rect = image.Rectangle{Min: p, Max: p}
			seen = true
			continue
		}
		rect.Min.X = min(rect.Min.X, p.X)
		rect.Min.Y = min(rect.Min.Y, p.Y)
		rect.Max.X = max(rect.Max.X, p.X)
		rect.Max.Y = max(rect.Max.Y, p.Y)
	}
	if !seen || rect.Empty() {
		return image.Rectangle{}, false
	}
	return rect, true
}
