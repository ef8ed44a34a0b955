package locus

// Defaults for axis fitting.
const (
	DefaultAxisPadding float32 = 0.01
	DefaultAxisTicks           = 15
)

// Line is a straight segment between two screen positions.
type Line struct {
	From, To ScreenPoint
}

// Axis holds the nice-fitted data bounds of a chart. The x axis runs along
// the bottom edge of the bounds and the y axis along the left edge; both
// share the (Min.X, Min.Y) corner.
type Axis struct {
	Bounds BBox[Point]
}

// FitAxis fits an axis to the given data bounds: each dimension is padded
// by paddingPct of its span and expanded to nice endpoints sized for
// roughly targetTicks ticks.
func FitAxis(data BBox[Point], paddingPct float32, targetTicks int) Axis {
	loX, hiX, _ := NiceRange(data.Min.X, data.Max.X, paddingPct, targetTicks)
	loY, hiY, _ := NiceRange(data.Min.Y, data.Max.Y, paddingPct, targetTicks)
	return Axis{Bounds: BBox[Point]{Min: Pt(loX, loY), Max: Pt(hiX, hiY)}}
}

// FitAxisDefault fits an axis with the default padding and tick count.
func FitAxisDefault(data BBox[Point]) Axis {
	return FitAxis(data, DefaultAxisPadding, DefaultAxisTicks)
}

// Lines projects the two axis segments into screen space. The shared
// origin corner is projected once so the segments meet exactly.
func (a Axis) Lines(view *ViewTransformer) (x, y Line) {
	corner := view.ToScreen(a.Bounds.Min)
	x = Line{From: corner, To: view.ToScreen(Pt(a.Bounds.Max.X, a.Bounds.Min.Y))}
	y = Line{From: corner, To: view.ToScreen(Pt(a.Bounds.Min.X, a.Bounds.Max.Y))}
	return x, y
}

// TicksX generates ticks across the fitted x range.
func (a Axis) TicksX(spec TickSpec) TickSet {
	return GenerateTicks(a.Bounds.Min.X, a.Bounds.Max.X, spec)
}

// TicksY generates ticks across the fitted y range.
func (a Axis) TicksY(spec TickSpec) TickSet {
	return GenerateTicks(a.Bounds.Min.Y, a.Bounds.Max.Y, spec)
}
