package locus

import "sort"

// DefaultLineWidth is the stroke width used when a line style leaves
// Width at zero.
const DefaultLineWidth float32 = 1.5

// LineStyle describes a stroked segment with an optional arrowhead at
// its destination end. Zero ArrowLength and ArrowWidth derive from the
// stroke width.
type LineStyle struct {
	Width       float32
	Color       RGBA
	Arrow       bool
	ArrowLength float32
	ArrowWidth  float32
}

// StrokeArrowLine draws the segment from one screen point to another,
// adding the style's arrowhead at the destination when requested. A
// zero-length segment has no direction, so it never gets an arrowhead.
func StrokeArrowLine(c Canvas, from, to ScreenPoint, style LineStyle) {
	width := style.Width
	if width <= 0 {
		width = DefaultLineWidth
	}
	c.StrokeLine(from, to, width, style.Color)
	if !style.Arrow {
		return
	}
	dir := to.Sub(from)
	if dir.Length() <= 0 {
		return
	}
	dir = dir.Normalize()
	perp := SPt(-dir.Y, dir.X)

	length := style.ArrowLength
	if length <= 0 {
		length = 4 * width
	}
	span := style.ArrowWidth
	if span <= 0 {
		span = 3.5 * width
	}
	base := to.Sub(dir.Mul(length))
	left := base.Add(perp.Mul(span))
	right := base.Sub(perp.Mul(span))
	c.FillTriangle(right, left, to, style.Color)
}

// LinePlot draws a polyline through the points of a dataset, ordered by
// their x coordinate. With Style.Arrow set the final segment carries an
// arrowhead, which reads as a trend pointer.
type LinePlot struct {
	Data  *Dataset
	Style LineStyle
}

// NewLinePlot returns a line plot of the dataset with theme-derived
// styling.
func NewLinePlot(data *Dataset) *LinePlot {
	return &LinePlot{Data: data}
}

// DrawInView renders the polyline through the view transform.
func (l *LinePlot) DrawInView(c Canvas, view *ViewTransformer, t *Theme) {
	if l.Data == nil || l.Data.Len() < 2 {
		return
	}
	pts := make([]Point, len(l.Data.Points))
	copy(pts, l.Data.Points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	style := l.Style
	style.Color = style.Color.Or(t.Cycle.Color(0))
	last := len(pts) - 1
	prev := view.ToScreen(pts[0])
	for i := 1; i <= last; i++ {
		cur := view.ToScreen(pts[i])
		seg := style
		seg.Arrow = style.Arrow && i == last
		StrokeArrowLine(c, prev, cur, seg)
		prev = cur
	}
}

// DataBounds returns the dataset bounds.
func (l *LinePlot) DataBounds() BBox[Point] {
	if l.Data == nil {
		return BBox[Point]{}
	}
	return l.Data.Bounds()
}
