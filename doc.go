// Package locus provides a small 2D chart plotting library for Go.
//
// # Overview
//
// locus draws scatter and line charts from float32 data. It fits nice
// axis ranges to the data, generates tick marks on linear, logarithmic
// and symmetric-log scales, and projects data-space coordinates into
// screen-space viewports. Charts render to PNG through a software
// rasterizer or to SVG, and themed color schemes keep plot furniture
// consistent.
//
// # Quick Start
//
//	import "github.com/gogpu/locus"
//
//	// Sample two interleaved half-moon clusters
//	data := locus.MakeMoons(locus.WithSeed(7))
//
//	// Compose a chart around a scatter of the data
//	graph := locus.NewGraph(locus.NewScatter(data),
//	    locus.WithGrid(locus.OrientBoth),
//	    locus.WithTickLabels(),
//	)
//
//	// Render to PNG
//	canvas := locus.NewRasterCanvas(800, 600)
//	canvas.Clear(locus.DefaultTheme().Background)
//	graph.Render(canvas)
//	canvas.SavePNG("moons.png")
//
// # Architecture
//
// The library is organized into:
//   - Scales: nice number rounding, axis fitting, tick generation
//   - View: viewports, margins, the data-to-screen transform
//   - Elements: scatter, line plot, axis, grid, tick labels, legend
//   - Backends: raster (PNG) in this package, SVG under backend/svg
//   - Data: datasets with cached bounds, synthetic generators, cluster/
//
// # Coordinate System
//
// Screen space uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data space is mathematical: Y increases up. The view transform flips
// between the two.
//
// # Precision
//
// All geometry and color math is float32, matching the GPU-adjacent
// libraries this package composes with.
package locus

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
