package palette

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Unknown is returned by Classify when the registry holds no colors.
const Unknown = "UNKNOWN"

// Classify returns the name of the registered color nearest to c by
// Euclidean distance in RGB space, and that distance.
// Ties go to the color declared first.
func (r *Registry) Classify(c [3]float64) (string, float64) {
	best := Unknown
	bestDist := math.Inf(1)
	for _, nc := range r.colors {
		d := floats.Distance(c[:], nc.RGB.Vector(), 2)
		if d < bestDist {
			bestDist = d
			best = nc.Name
		}
	}
	return best, bestDist
}

// ClassifyRGB is Classify for an 8-bit triple.
func (r *Registry) ClassifyRGB(c RGB) string {
	name, _ := r.Classify([3]float64{float64(c.R), float64(c.G), float64(c.B)})
	return name
}

// Vector returns the color as a float slice for distance computations.
func (c RGB) Vector() []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}
