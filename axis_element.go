package locus

// DefaultAxisWidth is the axis stroke width used when a style leaves
// Width at zero.
const DefaultAxisWidth float32 = 2

// AxisStyle configures how an AxisElement is stroked. Hide flags strip
// individual parts; an unset color inherits the theme's axis color.
// Axis arrowheads are square by default, four stroke widths long and
// wide.
type AxisStyle struct {
	Color       RGBA
	Width       float32
	ArrowLength float32
	ArrowWidth  float32
	HideX       bool
	HideY       bool
	HideXArrow  bool
	HideYArrow  bool
}

// AxisElement draws a fitted axis as two arrowed lines: x along the
// bottom edge of the bounds, y along the left edge.
type AxisElement struct {
	Axis  Axis
	Style AxisStyle
}

// NewAxisElement returns an axis element over fitted bounds.
func NewAxisElement(axis Axis) *AxisElement {
	return &AxisElement{Axis: axis}
}

// DrawInView renders the axis lines through the view transform.
func (a *AxisElement) DrawInView(c Canvas, view *ViewTransformer, t *Theme) {
	width := a.Style.Width
	if width <= 0 {
		width = DefaultAxisWidth
	}
	style := LineStyle{
		Width:       width,
		Color:       a.Style.Color.Or(t.Axis),
		ArrowLength: a.Style.ArrowLength,
		ArrowWidth:  a.Style.ArrowWidth,
	}
	if style.ArrowLength <= 0 {
		style.ArrowLength = 4 * width
	}
	if style.ArrowWidth <= 0 {
		style.ArrowWidth = 4 * width
	}
	x, y := a.Axis.Lines(view)
	if !a.Style.HideX {
		style.Arrow = !a.Style.HideXArrow
		StrokeArrowLine(c, x.From, x.To, style)
	}
	if !a.Style.HideY {
		style.Arrow = !a.Style.HideYArrow
		StrokeArrowLine(c, y.From, y.To, style)
	}
}

// DataBounds returns the fitted axis bounds.
func (a *AxisElement) DataBounds() BBox[Point] {
	return a.Axis.Bounds
}
