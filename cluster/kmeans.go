// Package cluster groups locus datasets with simple clustering
// algorithms and turns the results into chart elements.
package cluster

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/gogpu/locus"
)

// Fitting defaults, applied where options leave fields unset.
const (
	DefaultMaxIter = 1000
	DefaultMinMove = 1e-4
)

// KMeans partitions a dataset into k groups with Lloyd's algorithm.
// Centroids start uniformly random inside the dataset bounds and move
// to their members' mean each iteration.
type KMeans struct {
	k         int
	data      *locus.Dataset
	centroids []locus.Point
	members   [][]int
	maxIter   int
	minMove   float32
	iter      int
	converged bool
	rng       *rand.Rand
}

// Option configures a KMeans run.
type Option func(*KMeans)

// WithMaxIter caps the number of fitting iterations.
func WithMaxIter(n int) Option {
	return func(km *KMeans) { km.maxIter = n }
}

// WithMinMove sets the convergence threshold: fitting stops once no
// centroid moves farther than this between iterations.
func WithMinMove(v float32) Option {
	return func(km *KMeans) { km.minMove = v }
}

// WithSeed makes centroid initialization reproducible.
func WithSeed(seed uint64) Option {
	return func(km *KMeans) { km.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// NewKMeans seeds a clustering of the dataset into k groups. Fit or
// Step runs it.
func NewKMeans(k int, data *locus.Dataset, opts ...Option) *KMeans {
	if k < 1 {
		k = 1
	}
	km := &KMeans{
		k:       k,
		data:    data,
		maxIter: DefaultMaxIter,
		minMove: DefaultMinMove,
	}
	for _, opt := range opts {
		opt(km)
	}
	if km.rng == nil {
		km.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := data.Bounds()
	km.centroids = make([]locus.Point, km.k)
	km.members = make([][]int, km.k)
	for i := range km.centroids {
		km.centroids[i] = locus.Pt(
			uniform(km.rng, b.Min.X, b.Max.X),
			uniform(km.rng, b.Min.Y, b.Max.Y),
		)
	}
	return km
}

// Step runs one assign-update iteration. It does nothing once fitting
// has converged or the iteration cap is reached.
func (km *KMeans) Step() {
	if km.converged || km.iter >= km.maxIter {
		return
	}
	km.assign()
	km.update()
	km.iter++
}

// Fit iterates until convergence or the iteration cap.
func (km *KMeans) Fit() {
	for !km.converged && km.iter < km.maxIter {
		km.Step()
	}
	locus.Logger().Debug("kmeans fit finished",
		"k", km.k,
		"iterations", km.iter,
		"converged", km.converged,
	)
}

// assign gives every point to its nearest centroid. Ties go to the
// higher centroid index.
func (km *KMeans) assign() {
	for i := range km.members {
		km.members[i] = km.members[i][:0]
	}
	for i, p := range km.data.Points {
		best := 0
		bestDist := math32.Inf(1)
		for c, centroid := range km.centroids {
			if d := p.Distance(centroid); d <= bestDist {
				best = c
				bestDist = d
			}
		}
		km.members[best] = append(km.members[best], i)
	}
}

// update moves each centroid to the mean of its members, leaving empty
// clusters in place, and marks convergence once the biggest movement
// drops under the threshold.
func (km *KMeans) update() {
	biggest := math32.Inf(-1)
	for c, member := range km.members {
		if len(member) == 0 {
			continue
		}
		var sum locus.Point
		for _, i := range member {
			sum = sum.Add(km.data.Points[i])
		}
		mean := sum.Mul(1 / float32(len(member)))
		moved := km.centroids[c].Distance(mean)
		km.centroids[c] = mean
		biggest = math32.Max(biggest, moved)
	}
	if biggest < km.minMove {
		km.converged = true
	}
}

// Centroids returns a copy of the current centroid positions.
func (km *KMeans) Centroids() []locus.Point {
	out := make([]locus.Point, len(km.centroids))
	copy(out, km.centroids)
	return out
}

// Members returns the point indices currently assigned to each
// centroid. The inner slices are copies.
func (km *KMeans) Members() [][]int {
	out := make([][]int, len(km.members))
	for i, m := range km.members {
		out[i] = append([]int(nil), m...)
	}
	return out
}

// Iterations returns how many fitting iterations have run.
func (km *KMeans) Iterations() int { return km.iter }

// Converged reports whether fitting has settled.
func (km *KMeans) Converged() bool { return km.converged }

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
