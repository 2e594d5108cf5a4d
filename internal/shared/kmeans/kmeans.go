// Package kmeans implements seeded k-means clustering with k-means++ initialization.
// Runs are deterministic: the same points, options and seed always produce the
// same partition.
package kmeans

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidK is returned when K is not positive.
	ErrInvalidK = errors.New("kmeans: cluster count must be positive")
	// ErrTooFewPoints is returned when there are fewer points than clusters.
	ErrTooFewPoints = errors.New("kmeans: fewer points than clusters")
)

// Options configures a clustering run.
type Options struct {
	K         int     // number of clusters
	Seed      uint64  // seed for initialization
	Restarts  int     // number of independent initializations; the lowest inertia wins
	MaxIter   int     // Lloyd iterations per restart
	Tolerance float64 // convergence threshold, relative to the mean per-dimension variance
}

// DefaultOptions returns options with 10 restarts, 100 iterations and 1e-4 tolerance.
func DefaultOptions(k int, seed uint64) Options {
	return Options{K: k, Seed: seed, Restarts: 10, MaxIter: 100, Tolerance: 1e-4}
}

// Result is the outcome of Partition.
type Result struct {
	Centroids [][]float64
	Labels    []int // cluster index of every input point
	Counts    []int // points per cluster
	Inertia   float64
}

// Partition clusters points into opt.K groups.
func Partition(points [][]float64, opt Options) (*Result, error) {
	if opt.K <= 0 {
		return nil, ErrInvalidK
	}
	if len(points) < opt.K {
		return nil, fmt.Errorf("%w: %d points, %d clusters", ErrTooFewPoints, len(points), opt.K)
	}
	if opt.Restarts <= 0 {
		opt.Restarts = 1
	}
	if opt.MaxIter <= 0 {
		opt.MaxIter = 100
	}

	tol := opt.Tolerance * meanVariance(points)

	var best *Result
	for r := 0; r < opt.Restarts; r++ {
		rng := rand.New(rand.NewPCG(opt.Seed, uint64(r)))
		res := lloyd(points, initPlusPlus(points, opt.K, rng), opt.MaxIter, tol)
		if best == nil || res.Inertia < best.Inertia {
			best = res
		}
	}
	return best, nil
}

// initPlusPlus picks k initial centroids with k-means++ D² weighting.
func initPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, k)
	centers = append(centers, clone(points[rng.IntN(len(points))]))

	dist := make([]float64, len(points))
	for i, p := range points {
		dist[i] = sqDist(p, centers[0])
	}

	for len(centers) < k {
		total := floats.Sum(dist)
		idx := 0
		if total == 0 {
			// every point coincides with a center
			idx = rng.IntN(len(points))
		} else {
			target := rng.Float64() * total
			var acc float64
			for i, d := range dist {
				acc += d
				if acc >= target && d > 0 {
					idx = i
					break
				}
			}
		}
		c := clone(points[idx])
		centers = append(centers, c)
		for i, p := range points {
			if d := sqDist(p, c); d < dist[i] {
				dist[i] = d
			}
		}
	}
	return centers
}

func lloyd(points [][]float64, centers [][]float64, maxIter int, tol float64) *Result {
	k := len(centers)
	dim := len(points[0])
	labels := make([]int, len(points))
	counts := make([]int, k)
	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}

	for iter := 0; iter < maxIter; iter++ {
		assign(points, centers, labels)

		for c := range sums {
			counts[c] = 0
			for d := range sums[c] {
				sums[c][d] = 0
			}
		}
		for i, p := range points {
			floats.Add(sums[labels[i]], p)
			counts[labels[i]]++
		}

		var shift float64
		for c := range centers {
			if counts[c] == 0 {
				far := farthestPoint(points, centers, labels)
				shift += sqDist(centers[c], points[far])
				centers[c] = clone(points[far])
				continue
			}
			floats.Scale(1/float64(counts[c]), sums[c])
			shift += sqDist(centers[c], sums[c])
			copy(centers[c], sums[c])
		}
		if shift <= tol {
			break
		}
	}

	inertia := assign(points, centers, labels)
	for c := range counts {
		counts[c] = 0
	}
	for _, l := range labels {
		counts[l]++
	}
	return &Result{Centroids: centers, Labels: labels, Counts: counts, Inertia: inertia}
}

// assign labels every point with its nearest center and returns the inertia.
// Ties go to the lower center index.
func assign(points [][]float64, centers [][]float64, labels []int) float64 {
	var inertia float64
	for i, p := range points {
		best, bestDist := 0, math.Inf(1)
		for c, center := range centers {
			if d := sqDist(p, center); d < bestDist {
				best, bestDist = c, d
			}
		}
		labels[i] = best
		inertia += bestDist
	}
	return inertia
}

func farthestPoint(points [][]float64, centers [][]float64, labels []int) int {
	far, farDist := 0, -1.0
	for i, p := range points {
		if d := sqDist(p, centers[labels[i]]); d > farDist {
			far, farDist = i, d
		}
	}
	return far
}

func meanVariance(points [][]float64) float64 {
	dim := len(points[0])
	col := make([]float64, len(points))
	var sum float64
	for d := 0; d < dim; d++ {
		for i, p := range points {
			col[i] = p[d]
		}
		if len(col) > 1 {
			sum += stat.Variance(col, nil)
		}
	}
	return sum / float64(dim)
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
