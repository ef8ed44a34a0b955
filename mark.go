package locus

// DefaultMarkSize is the mark half-extent in pixels used when a style
// leaves Size at zero.
const DefaultMarkSize float32 = 3

// Shape selects the glyph drawn for a point mark.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
)

// MarkStyle describes a single point mark. Size is the half-extent of
// the glyph in pixels.
type MarkStyle struct {
	Shape Shape
	Size  float32
	Color RGBA
}

// DrawMark renders one point mark at a screen position. Chart elements
// outside this package can build on it for custom glyph work.
func DrawMark(c Canvas, at ScreenPoint, style MarkStyle) {
	size := style.Size
	if size <= 0 {
		size = DefaultMarkSize
	}
	switch style.Shape {
	case ShapeSquare:
		c.FillRect(NewBBox(
			SPt(at.X-size, at.Y-size),
			SPt(at.X+size, at.Y+size),
		), style.Color)
	case ShapeTriangle:
		c.FillTriangle(
			SPt(at.X, at.Y-size),
			SPt(at.X-size, at.Y+size),
			SPt(at.X+size, at.Y+size),
			style.Color,
		)
	default:
		c.FillCircle(at, size, style.Color)
	}
}
