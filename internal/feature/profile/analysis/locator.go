// Package analysis classifies skin tone and undertone from a face photo.
package analysis

import (
	"context"
	"fmt"
	"image"

	"wardrobe_backend/internal/shared/imaging"
)

// Portion of the face box kept for color sampling: the forehead-to-cheek band,
// without eyes, mouth, hairline and ears.
const (
	skinTop    = 0.15
	skinBottom = 0.75
	skinLeft   = 0.20
	skinRight  = 0.80
)

const noFaceMessage = "no face detected in the uploaded photo, please upload a clear, front-facing photo"

// FaceDetector returns the bounding boxes of the faces found in a photo, in
// detection order. An empty result is not an error.
type FaceDetector interface {
	DetectFaces(ctx context.Context, px *imaging.Pixels) ([]image.Rectangle, error)
}

// Locator finds the skin sample region of a face photo.
type Locator struct {
	detector FaceDetector
}

// NewLocator returns a Locator backed by detector.
func NewLocator(detector FaceDetector) *Locator {
	return &Locator{detector: detector}
}

// Locate detects faces, picks the largest and returns its skin band.
func (l *Locator) Locate(ctx context.Context, px *imaging.Pixels) (*imaging.Pixels, error) {
	if px.Empty() {
		return nil, imaging.NewProcessingError("the uploaded photo has no pixels", nil)
	}
	faces, err := l.detector.DetectFaces(ctx, px)
	if err != nil {
		return nil, fmt.Errorf("face detection failed: %w", err)
	}
	face, ok := LargestFace(faces)
	if !ok {
		return nil, imaging.NewProcessingError(noFaceMessage, nil)
	}
	return px.Crop(SkinRegion(face))
}

// LargestFace returns the box with the largest area. Ties keep the earliest box.
func LargestFace(faces []image.Rectangle) (image.Rectangle, bool) {
	if len(faces) == 0 {
		return image.Rectangle{}, false
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if area(f) > area(best) {
			best = f
		}
	}
	return best, true
}

// SkinRegion maps a face box to its skin sampling rectangle.
// Offsets are truncated toward zero, like integer pixel coordinates.
func SkinRegion(face image.Rectangle) image.Rectangle {
	w, h := float64(face.Dx()), float64(face.Dy())
	return image.Rect(
		face.Min.X+int(w*skinLeft),
		face.Min.Y+int(h*skinTop),
		face.Min.X+int(w*skinRight),
		face.Min.Y+int(h*skinBottom),
	)
}

func area(r image.Rectangle) int {
	return r.Dx() * r.Dy()
}
