package locus

// Canvas is the drawing surface chart elements render through. The raster
// backend in this package and the SVG backend in backend/svg implement it;
// custom backends only need these primitives.
//
// All positions are screen-space pixels with the origin at the top-left.
type Canvas interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height float32)

	// Clear fills the whole surface with a color.
	Clear(c RGBA)

	// StrokeLine draws a straight segment with the given stroke width.
	StrokeLine(from, to ScreenPoint, width float32, c RGBA)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r BBox[ScreenPoint], c RGBA)

	// FillCircle fills a disc of the given radius around center.
	FillCircle(center ScreenPoint, radius float32, c RGBA)

	// FillTriangle fills the triangle with the given vertices.
	FillTriangle(a, b, c ScreenPoint, col RGBA)

	// DrawText renders s with its anchor point at the given position.
	DrawText(s string, at ScreenPoint, style TextStyle)

	// MeasureText returns the rendered extent of s at the given font size.
	MeasureText(s string, size float32) (width, height float32)

	// PushClip restricts subsequent drawing to r, intersected with any
	// clip already in effect. Clear is exempt.
	PushClip(r BBox[ScreenPoint])

	// PopClip restores the clip that was in effect before the matching
	// PushClip.
	PopClip()
}

// Element is chart furniture drawn at fixed screen positions, independent
// of any data-to-screen mapping.
type Element interface {
	Draw(c Canvas, t *Theme)
}

// ChartElement is a chart subject that lives in data space. DrawInView
// receives the projection from its data coordinates onto the screen;
// DataBounds reports the extent used to fit axes around it.
type ChartElement interface {
	DrawInView(c Canvas, view *ViewTransformer, t *Theme)
	DataBounds() BBox[Point]
}
