package locus

// DefaultTickPad is the gap in pixels between an axis line and its tick
// labels.
const DefaultTickPad float32 = 6

// TickLabels annotates the fitted axis lines with tick values: x labels
// below the bottom edge, y labels left of the left edge. Minor ticks
// are labeled at reduced size only when Minors is set.
type TickLabels struct {
	Axis   Axis
	SpecX  TickSpec
	SpecY  TickSpec
	Style  TextStyle
	Pad    float32
	Minors bool
}

// NewTickLabels returns linear tick labels for fitted axis bounds.
func NewTickLabels(axis Axis) *TickLabels {
	return &TickLabels{Axis: axis}
}

// DrawInView renders the labels through the view transform.
func (tl *TickLabels) DrawInView(c Canvas, view *ViewTransformer, t *Theme) {
	pad := tl.Pad
	if pad <= 0 {
		pad = DefaultTickPad
	}
	style := tl.Style
	style.Color = style.Color.Or(t.Text)
	minorSize := style.SizeOrDefault() * 0.8

	b := tl.Axis.Bounds
	xStyle := style
	xStyle.Anchor = AnchorTopCenter
	for _, tick := range tl.Axis.TicksX(tl.SpecX).Ticks {
		if !tick.Major && !tl.Minors {
			continue
		}
		s := xStyle
		if !tick.Major {
			s.Size = minorSize
		}
		at := view.ToScreen(Pt(tick.Value, b.Min.Y))
		c.DrawText(tick.Label, SPt(at.X, at.Y+pad), s)
	}

	yStyle := style
	yStyle.Anchor = AnchorRightMiddle
	for _, tick := range tl.Axis.TicksY(tl.SpecY).Ticks {
		if !tick.Major && !tl.Minors {
			continue
		}
		s := yStyle
		if !tick.Major {
			s.Size = minorSize
		}
		at := view.ToScreen(Pt(b.Min.X, tick.Value))
		c.DrawText(tick.Label, SPt(at.X-pad, at.Y), s)
	}
}

// DataBounds returns the fitted axis bounds.
func (tl *TickLabels) DataBounds() BBox[Point] {
	return tl.Axis.Bounds
}
