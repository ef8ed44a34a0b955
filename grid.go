package locus

import "github.com/chewxy/math32"

// Orientation selects which grid line families are drawn.
type Orientation int

const (
	OrientBoth Orientation = iota
	OrientVertical
	OrientHorizontal
)

// Grid defaults, applied where a GridStyle leaves fields at zero.
const (
	DefaultGridAlpha float32 = 0.3
	DefaultGridWidth float32 = 1
	DefaultGridTicks         = 10
)

// GridStyle configures grid rendering. Alpha replaces the line color's
// own alpha so themes can share one grid color across light and dark
// backdrops.
type GridStyle struct {
	Color    RGBA
	Alpha    float32
	Width    float32
	MaxTicks int
}

// GridLines rules the axis bounds at regular data intervals. Zero steps
// pick a nice spacing that yields at most MaxTicks lines per direction.
type GridLines struct {
	Axis        Axis
	Orientation Orientation
	StepX       float32
	StepY       float32
	Style       GridStyle
}

// NewGridLines returns auto-spaced grid lines over fitted axis bounds.
func NewGridLines(axis Axis, o Orientation) *GridLines {
	return &GridLines{Axis: axis, Orientation: o}
}

// DrawInView renders the grid lines through the view transform.
func (g *GridLines) DrawInView(c Canvas, view *ViewTransformer, t *Theme) {
	alpha := g.Style.Alpha
	if alpha <= 0 {
		alpha = DefaultGridAlpha
	}
	width := g.Style.Width
	if width <= 0 {
		width = DefaultGridWidth
	}
	col := g.Style.Color.Or(t.Grid).WithAlpha(alpha)

	b := g.Axis.Bounds
	if g.Orientation != OrientHorizontal {
		for _, x := range gridPositions(b.Min.X, b.Max.X, g.StepX, g.Style.MaxTicks) {
			c.StrokeLine(view.ToScreen(Pt(x, b.Min.Y)), view.ToScreen(Pt(x, b.Max.Y)), width, col)
		}
	}
	if g.Orientation != OrientVertical {
		for _, y := range gridPositions(b.Min.Y, b.Max.Y, g.StepY, g.Style.MaxTicks) {
			c.StrokeLine(view.ToScreen(Pt(b.Min.X, y)), view.ToScreen(Pt(b.Max.X, y)), width, col)
		}
	}
}

// DataBounds returns the fitted axis bounds.
func (g *GridLines) DataBounds() BBox[Point] {
	return g.Axis.Bounds
}

// gridPositions returns the grid coordinates covering [min, max]: every
// multiple of the spacing from the first at or above min. A zero step
// derives the spacing from the span and the requested line count.
func gridPositions(min, max, step float32, maxTicks int) []float32 {
	if maxTicks < 1 {
		maxTicks = DefaultGridTicks
	}
	spacing := step
	if spacing <= 0 {
		spacing = NiceNumber((max-min)/float32(maxTicks), true)
	}
	if !(spacing > 0) || !isFinite(spacing) || !isFinite(min) || !isFinite(max) {
		return nil
	}
	var out []float32
	for pos := math32.Ceil(min/spacing) * spacing; pos <= max; pos += spacing {
		out = append(out, pos)
	}
	return out
}
