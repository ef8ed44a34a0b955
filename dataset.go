package locus

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Dataset holds data-space samples with their bounds cached, so chart
// elements can ask for extents without rescanning the points.
type Dataset struct {
	Points []Point
	min    Point
	max    Point
}

// NewDataset wraps the points, scanning them once for bounds. The slice
// is retained, not copied.
func NewDataset(points []Point) *Dataset {
	d := &Dataset{Points: points}
	if len(points) == 0 {
		return d
	}
	d.min = points[0]
	d.max = points[0]
	for _, p := range points[1:] {
		d.min.X = math32.Min(d.min.X, p.X)
		d.min.Y = math32.Min(d.min.Y, p.Y)
		d.max.X = math32.Max(d.max.X, p.X)
		d.max.Y = math32.Max(d.max.Y, p.Y)
	}
	return d
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Points) }

// IsEmpty reports whether the dataset holds no samples.
func (d *Dataset) IsEmpty() bool { return len(d.Points) == 0 }

// Bounds returns the cached componentwise bounds. An empty dataset has
// zero bounds.
func (d *Dataset) Bounds() BBox[Point] {
	return BBox[Point]{Min: d.min, Max: d.max}
}

// genConfig carries the shared knobs of the synthetic generators. Each
// generator starts from its own defaults before applying options.
type genConfig struct {
	groups    int
	samples   int
	radiusMin float32
	radiusMax float32
	xMin      float32
	xMax      float32
	yMin      float32
	yMax      float32
	noise     bool
	scale     float32
	rng       *rand.Rand
}

// GenOption configures the synthetic dataset generators.
type GenOption func(*genConfig)

// WithGroups sets how many clusters or moons are generated.
func WithGroups(n int) GenOption {
	return func(c *genConfig) { c.groups = n }
}

// WithSamples sets the total number of points generated.
func WithSamples(n int) GenOption {
	return func(c *genConfig) { c.samples = n }
}

// WithRadius sets the range cluster radii are drawn from.
func WithRadius(min, max float32) GenOption {
	return func(c *genConfig) { c.radiusMin, c.radiusMax = min, max }
}

// WithXRange sets the range cluster centers are placed in horizontally.
func WithXRange(min, max float32) GenOption {
	return func(c *genConfig) { c.xMin, c.xMax = min, max }
}

// WithYRange sets the range cluster centers are placed in vertically.
func WithYRange(min, max float32) GenOption {
	return func(c *genConfig) { c.yMin, c.yMax = min, max }
}

// WithNoise toggles sample jitter for MakeMoons. The scale is the full
// width of the uniform jitter added to each coordinate.
func WithNoise(on bool, scale float32) GenOption {
	return func(c *genConfig) { c.noise, c.scale = on, scale }
}

// WithSeed makes generation reproducible.
func WithSeed(seed uint64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

func (c *genConfig) sanitize() {
	if c.groups < 1 {
		c.groups = 1
	}
	if c.samples < 0 {
		c.samples = 0
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// MakeCircles samples points from uniformly filled discs whose centers
// and radii are drawn at random. Samples rotate through the discs, so
// each disc ends up with an equal share.
func MakeCircles(opts ...GenOption) *Dataset {
	cfg := genConfig{
		groups:    3,
		samples:   100,
		radiusMin: 1, radiusMax: 10,
		xMin: -10, xMax: 10,
		yMin: -10, yMax: 10,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.sanitize()

	radii := make([]float32, cfg.groups)
	centers := make([]Point, cfg.groups)
	for i := range radii {
		radii[i] = uniform(cfg.rng, cfg.radiusMin, cfg.radiusMax)
		centers[i] = Pt(
			uniform(cfg.rng, cfg.xMin, cfg.xMax),
			uniform(cfg.rng, cfg.yMin, cfg.yMax),
		)
	}
	points := make([]Point, 0, cfg.samples)
	for i := 0; i < cfg.samples; i++ {
		g := i % cfg.groups
		// sqrt keeps the disc uniformly filled instead of center-heavy.
		r := radii[g] * math32.Sqrt(cfg.rng.Float32())
		theta := cfg.rng.Float32() * 2 * math32.Pi
		points = append(points, Pt(
			centers[g].X+r*math32.Cos(theta),
			centers[g].Y+r*math32.Sin(theta),
		))
	}
	return NewDataset(points)
}

// MakeMoons samples points from interleaved half-circle arcs, the
// classic two-moons shape. Even-indexed samples fall on a downward arc,
// odd-indexed on an upward one.
func MakeMoons(opts ...GenOption) *Dataset {
	cfg := genConfig{
		groups:    2,
		samples:   100,
		radiusMin: 1, radiusMax: 5,
		xMin: -10, xMax: 10,
		yMin: -10, yMax: 10,
		noise: true, scale: 0.3,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.sanitize()

	radii := make([]float32, cfg.groups)
	centers := make([]Point, cfg.groups)
	for i := range radii {
		radii[i] = uniform(cfg.rng, cfg.radiusMin, cfg.radiusMax)
		centers[i] = Pt(
			uniform(cfg.rng, cfg.xMin, cfg.xMax),
			uniform(cfg.rng, cfg.yMin, cfg.yMax),
		)
	}
	points := make([]Point, 0, cfg.samples)
	for i := 0; i < cfg.samples; i++ {
		g := i % cfg.groups
		flip := float32(1)
		if i%2 == 0 {
			flip = -1
		}
		theta := uniform(cfg.rng, 0, math32.Pi)
		x := radii[g]*math32.Cos(theta) + centers[g].X
		y := radii[g]*math32.Sin(theta)*flip + flip*centers[g].Y
		if cfg.noise {
			x += uniform(cfg.rng, -cfg.scale/2, cfg.scale/2)
			y += uniform(cfg.rng, -cfg.scale/2, cfg.scale/2)
		}
		points = append(points, Pt(x, y))
	}
	return NewDataset(points)
}
