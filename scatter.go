package locus

// Scatter draws every point of a dataset as a mark. The fixed style
// fields apply to all points; the optional per-point funcs override
// them for individual samples, which is how clustered or weighted data
// gets its encoding.
type Scatter struct {
	Data  *Dataset
	Color RGBA
	Size  float32
	Shape Shape

	// ColorFunc, SizeFunc and ShapeFunc, when non-nil, are consulted per
	// point with its index and data position.
	ColorFunc func(i int, p Point) RGBA
	SizeFunc  func(i int, p Point) float32
	ShapeFunc func(i int, p Point) Shape
}

// NewScatter returns a scatter plot of the dataset with theme-derived
// styling.
func NewScatter(data *Dataset) *Scatter {
	return &Scatter{Data: data}
}

// WithColor sets the fixed mark color and returns the scatter.
func (s *Scatter) WithColor(c RGBA) *Scatter {
	s.Color = c
	return s
}

// WithSize sets the fixed mark size and returns the scatter.
func (s *Scatter) WithSize(size float32) *Scatter {
	s.Size = size
	return s
}

// WithShape sets the fixed mark shape and returns the scatter.
func (s *Scatter) WithShape(shape Shape) *Scatter {
	s.Shape = shape
	return s
}

// DrawInView renders the marks through the view transform.
func (s *Scatter) DrawInView(c Canvas, view *ViewTransformer, t *Theme) {
	if s.Data == nil {
		return
	}
	base := MarkStyle{
		Shape: s.Shape,
		Size:  s.Size,
		Color: s.Color.Or(t.Cycle.Color(0)),
	}
	for i, p := range s.Data.Points {
		style := base
		if s.ColorFunc != nil {
			style.Color = s.ColorFunc(i, p)
		}
		if s.SizeFunc != nil {
			style.Size = s.SizeFunc(i, p)
		}
		if s.ShapeFunc != nil {
			style.Shape = s.ShapeFunc(i, p)
		}
		DrawMark(c, view.ToScreen(p), style)
	}
}

// DataBounds returns the dataset bounds.
func (s *Scatter) DataBounds() BBox[Point] {
	if s.Data == nil {
		return BBox[Point]{}
	}
	return s.Data.Bounds()
}
