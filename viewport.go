package locus

import "github.com/chewxy/math32"

// Default viewport geometry.
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
	DefaultMargin         = 40
)

// Margins is the inner padding of a viewport, in pixels. The area inside
// the margins is where data is drawn; axis lines, tick labels and titles
// live in the margin band.
type Margins struct {
	Left, Right, Top, Bottom float32
}

// UniformMargins creates margins with the same size on every side.
func UniformMargins(v float32) Margins {
	return Margins{Left: v, Right: v, Top: v, Bottom: v}
}

// Viewport is a rectangular region of the output surface, positioned at
// (X, Y) in screen coordinates. Several viewports can tile one surface to
// draw charts side by side.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	Margins       Margins
}

// NewViewport creates a viewport at the given position and size with
// default margins.
func NewViewport(x, y, width, height float32) Viewport {
	return Viewport{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Margins: UniformMargins(DefaultMargin),
	}
}

// DefaultViewport returns a whole-surface viewport of the default size.
func DefaultViewport() Viewport {
	return NewViewport(0, 0, DefaultViewportWidth, DefaultViewportHeight)
}

// WithMargins returns a copy of the viewport with the given margins.
func (v Viewport) WithMargins(m Margins) Viewport {
	v.Margins = m
	return v
}

// OuterBounds returns the full viewport rectangle in screen space.
func (v Viewport) OuterBounds() BBox[ScreenPoint] {
	return NewBBox(SPt(v.X, v.Y), SPt(v.X+v.Width, v.Y+v.Height))
}

// InnerBounds returns the viewport rectangle inset by its margins. Margins
// larger than the viewport collapse the box to a degenerate one instead of
// inverting it.
func (v Viewport) InnerBounds() BBox[ScreenPoint] {
	minX := v.X + v.Margins.Left
	minY := v.Y + v.Margins.Top
	maxX := math32.Max(v.X+v.Width-v.Margins.Right, minX)
	maxY := math32.Max(v.Y+v.Height-v.Margins.Bottom, minY)
	return BBox[ScreenPoint]{Min: SPt(minX, minY), Max: SPt(maxX, maxY)}
}

// ViewTransformer maps data-space positions into a screen-space rectangle.
// The X axis maps left to right; the Y axis is inverted so that larger data
// values appear higher on screen.
type ViewTransformer struct {
	Data   BBox[Point]
	Screen BBox[ScreenPoint]
}

// NewViewTransformer creates a transformer projecting data onto screen.
func NewViewTransformer(data BBox[Point], screen BBox[ScreenPoint]) ViewTransformer {
	return ViewTransformer{Data: data, Screen: screen}
}

// ToScreen projects a data-space point into screen space. Points outside
// the data bounds project outside the screen bounds; no clamping happens
// here.
func (t ViewTransformer) ToScreen(p Point) ScreenPoint {
	return ScreenPoint{
		X: mapRange(p.X, t.Data.Min.X, t.Data.Max.X, t.Screen.Min.X, t.Screen.Max.X),
		Y: mapRange(p.Y, t.Data.Min.Y, t.Data.Max.Y, t.Screen.Max.Y, t.Screen.Min.Y),
	}
}

// ToScreenAll projects a slice of data-space points.
func (t ViewTransformer) ToScreenAll(ps []Point) []ScreenPoint {
	out := make([]ScreenPoint, len(ps))
	for i, p := range ps {
		out[i] = t.ToScreen(p)
	}
	return out
}

// mapRange linearly maps v from [inMin, inMax] to [outMin, outMax]. A
// degenerate input range collapses every value to outMin.
func mapRange(v, inMin, inMax, outMin, outMax float32) float32 {
	if math32.Abs(inMax-inMin) < epsilon {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
