package analysis

import (
	"context"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"wardrobe_backend/internal/feature/profile/domain/entity"
	"wardrobe_backend/internal/shared/imaging"
)

// Thresholds on the 8-bit Lab channels.
const (
	FairLightness = 170.0
	DarkLightness = 120.0
	WarmB         = 140.0
	CoolB         = 125.0
)

// LabStats is the mean color of a region in 8-bit Lab: L scaled to 0..255,
// a and b offset by 128.
type LabStats struct {
	L, A, B float64
}

// Result is the outcome of a skin analysis.
type Result struct {
	Tone      entity.SkinTone
	Undertone entity.SkinUndertone
	Stats     LabStats
}

// AverageColor converts every pixel to 8-bit Lab and averages each channel.
func AverageColor(region *imaging.Pixels) (LabStats, error) {
	if region.Empty() {
		return LabStats{}, imaging.NewProcessingError("the skin region is empty", nil)
	}
	n := region.Len()
	ls, as, bs := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		ls[i], as[i], bs[i] = lab8(region.RGBAt(i))
	}
	return LabStats{L: stat.Mean(ls, nil), A: stat.Mean(as, nil), B: stat.Mean(bs, nil)}, nil
}

// lab8 converts one sRGB pixel to Lab quantized to 8 bits per channel.
func lab8(r, g, b uint8) (float64, float64, float64) {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, a, bb := c.Lab()
	return quantize(l * 255), quantize(a*100 + 128), quantize(bb*100 + 128)
}

func quantize(v float64) float64 {
	return math.Min(255, math.Max(0, math.Round(v)))
}

// ClassifyTone maps lightness to a skin tone. Both thresholds are inclusive.
func ClassifyTone(s LabStats) entity.SkinTone {
	switch {
	case s.L >= FairLightness:
		return entity.ToneFair
	case s.L <= DarkLightness:
		return entity.ToneDark
	default:
		return entity.ToneMedium
	}
}

// ClassifyUndertone maps the b channel to an undertone. Both thresholds are inclusive.
func ClassifyUndertone(s LabStats) entity.SkinUndertone {
	switch {
	case s.B >= WarmB:
		return entity.UndertoneWarm
	case s.B <= CoolB:
		return entity.UndertoneCool
	default:
		return entity.UndertoneNeutral
	}
}

// SkinAnalyzer runs the full photo to tone/undertone pipeline.
type SkinAnalyzer struct {
	locator *Locator
}

// NewSkinAnalyzer creates a SkinAnalyzer using detector to find faces.
func NewSkinAnalyzer(detector FaceDetector) *SkinAnalyzer {
	return &SkinAnalyzer{locator: NewLocator(detector)}
}

// Analyze locates the skin region and classifies it. Locator errors are returned unchanged.
func (a *SkinAnalyzer) Analyze(ctx context.Context, px *imaging.Pixels) (Result, error) {
	region, err := a.locator.Locate(ctx, px)
	if err != nil {
		return Result{}, err
	}
	stats, err := AverageColor(region)
	if err != nil {
		return Result{}, err
	}
	return Result{Tone: ClassifyTone(stats), Undertone: ClassifyUndertone(stats), Stats: stats}, nil
}
