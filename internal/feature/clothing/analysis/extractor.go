// Package analysis extracts the dominant colors of a clothing photo.
package analysis

import (
	"errors"
	"sort"

	"wardrobe_backend/internal/shared/imaging"
	"wardrobe_backend/internal/shared/kmeans"
	"wardrobe_backend/internal/shared/palette"
)

const (
	// ClothingClusters is the number of color clusters computed per clothing image.
	ClothingClusters = 3
	// MinClusterPercentage is the smallest share a second cluster needs to be
	// reported as the secondary color.
	MinClusterPercentage = 0.1
	// DefaultSeed keeps clustering reproducible across uploads.
	DefaultSeed uint64 = 42
)

// Cluster is one color group found in an image.
type Cluster struct {
	Index    int        // position in the clustering output, used as a tie-break
	Centroid [3]float64 // mean RGB of the member pixels
	Share    float64    // fraction of all pixels, 0..1
}

// Colors is the labelled result for a clothing image.
type Colors struct {
	Primary   string
	Secondary *string // nil when the second cluster is not significant
}

// Extract clusters the pixels into k groups and returns them ordered by share,
// largest first. Equal shares keep the clustering order.
func Extract(px *imaging.Pixels, k int, seed uint64) ([]Cluster, error) {
	if px.Empty() {
		return nil, imaging.NewProcessingError("the uploaded image has no pixels", nil)
	}

	rgb := px.RGB()
	points := make([][]float64, rgb.Len())
	for i := range points {
		r, g, b := rgb.RGBAt(i)
		points[i] = []float64{float64(r), float64(g), float64(b)}
	}

	res, err := kmeans.Partition(points, kmeans.DefaultOptions(k, seed))
	if err != nil {
		if errors.Is(err, kmeans.ErrTooFewPoints) {
			return nil, imaging.NewProcessingError("the uploaded image is too small to analyze its colors", err)
		}
		return nil, imaging.NewProcessingError("could not analyze the colors of the uploaded image", err)
	}

	total := float64(len(points))
	clusters := make([]Cluster, len(res.Centroids))
	for i, c := range res.Centroids {
		clusters[i] = Cluster{
			Index:    i,
			Centroid: [3]float64{c[0], c[1], c[2]},
			Share:    float64(res.Counts[i]) / total,
		}
	}
	sort.SliceStable(clusters, func(a, b int) bool {
		return clusters[a].Share > clusters[b].Share
	})
	return clusters, nil
}

// Extractor labels clothing images against a color registry.
type Extractor struct {
	registry *palette.Registry
	seed     uint64
}

// NewExtractor returns an Extractor using the given registry and clustering seed.
func NewExtractor(registry *palette.Registry, seed uint64) *Extractor {
	return &Extractor{registry: registry, seed: seed}
}

// ClothingColors returns the primary color and, when its cluster holds at least
// MinClusterPercentage of the pixels, the secondary color.
func (e *Extractor) ClothingColors(px *imaging.Pixels) (Colors, error) {
	clusters, err := Extract(px, ClothingClusters, e.seed)
	if err != nil {
		return Colors{}, err
	}
	return e.label(clusters), nil
}

func (e *Extractor) label(clusters []Cluster) Colors {
	primary, _ := e.registry.Classify(clusters[0].Centroid)
	out := Colors{Primary: primary}
	if len(clusters) > 1 && clusters[1].Share >= MinClusterPercentage {
		secondary, _ := e.registry.Classify(clusters[1].Centroid)
		out.Secondary = &secondary
	}
	return out
}
