package locus

// Annotation places a text note on a chart, anchored either at a data
// position or at a fixed screen position. A non-nil Target adds a
// leader arrow from the note to that data point.
type Annotation struct {
	Text      string
	At        Point
	Screen    ScreenPoint
	UseScreen bool
	Target    *Point
	Style     TextStyle
	Leader    LineStyle
}

// NewAnnotation returns a note anchored at a data position.
func NewAnnotation(text string, at Point) *Annotation {
	return &Annotation{Text: text, At: at}
}

// NewScreenAnnotation returns a note pinned to a screen position, which
// keeps it put when the data view changes.
func NewScreenAnnotation(text string, at ScreenPoint) *Annotation {
	return &Annotation{Text: text, Screen: at, UseScreen: true}
}

// PointingAt adds a leader arrow toward a data point and returns the
// annotation.
func (a *Annotation) PointingAt(target Point) *Annotation {
	a.Target = &target
	return a
}

// DrawInView renders the note and its leader through the view
// transform.
func (a *Annotation) DrawInView(c Canvas, view *ViewTransformer, t *Theme) {
	if a.Text == "" {
		return
	}
	style := a.Style
	style.Color = style.Color.Or(t.Text)

	at := a.Screen
	if !a.UseScreen {
		at = view.ToScreen(a.At)
	}
	if a.Target != nil {
		leader := a.Leader
		leader.Color = leader.Color.Or(style.Color)
		if leader.Width <= 0 {
			leader.Width = 1
		}
		leader.Arrow = true
		StrokeArrowLine(c, at, view.ToScreen(*a.Target), leader)
	}
	c.DrawText(a.Text, at, style)
}

// DataBounds returns a degenerate box at the note's data position, so a
// screen-pinned note never stretches an auto-fitted axis.
func (a *Annotation) DataBounds() BBox[Point] {
	if a.UseScreen {
		return BBox[Point]{}
	}
	return BBox[Point]{Min: a.At, Max: a.At}
}
