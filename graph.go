package locus

// GraphOption configures a Graph during creation.
type GraphOption func(*graphOptions)

type graphOptions struct {
	viewport  Viewport
	theme     Theme
	hasTheme  bool
	axis      *Axis
	padding   float32
	ticks     int
	axisStyle AxisStyle
	hideAxis  bool
	gridOn    bool
	gridOrien Orientation
	gridStyle GridStyle
	stepX     float32
	stepY     float32
	labelsOn  bool
	specX     TickSpec
	specY     TickSpec
	legend    *Legend
	layers    []ChartElement
	overlays  []Element
}

// WithViewport places the chart in a viewport instead of filling the
// whole canvas.
func WithViewport(v Viewport) GraphOption {
	return func(o *graphOptions) { o.viewport = v }
}

// WithTheme selects the theme the chart resolves unset colors from.
func WithTheme(t Theme) GraphOption {
	return func(o *graphOptions) { o.theme, o.hasTheme = t, true }
}

// WithAxis pins the axis bounds instead of fitting them to the subject.
func WithAxis(a Axis) GraphOption {
	return func(o *graphOptions) { o.axis = &a }
}

// WithAxisFit tunes the automatic axis fit: padding as a fraction of
// the data span per side, and the target tick count.
func WithAxisFit(paddingPct float32, targetTicks int) GraphOption {
	return func(o *graphOptions) { o.padding, o.ticks = paddingPct, targetTicks }
}

// WithAxisStyle styles the axis lines.
func WithAxisStyle(s AxisStyle) GraphOption {
	return func(o *graphOptions) { o.axisStyle = s }
}

// WithoutAxis suppresses the axis lines entirely.
func WithoutAxis() GraphOption {
	return func(o *graphOptions) { o.hideAxis = true }
}

// WithGrid enables auto-spaced grid lines in the given orientation.
func WithGrid(orientation Orientation) GraphOption {
	return func(o *graphOptions) { o.gridOn, o.gridOrien = true, orientation }
}

// WithGridSteps enables grid lines at fixed data-space spacings. A zero
// step keeps the automatic spacing for that direction.
func WithGridSteps(stepX, stepY float32) GraphOption {
	return func(o *graphOptions) { o.gridOn, o.stepX, o.stepY = true, stepX, stepY }
}

// WithGridStyle styles the grid lines and implies WithGrid in both
// orientations unless another grid option says otherwise.
func WithGridStyle(s GridStyle) GraphOption {
	return func(o *graphOptions) { o.gridOn, o.gridStyle = true, s }
}

// WithTickLabels enables tick value labels along both axes.
func WithTickLabels() GraphOption {
	return func(o *graphOptions) { o.labelsOn = true }
}

// WithTickSpecs enables tick labels generated from explicit specs, which
// is how log or symlog labeling is requested.
func WithTickSpecs(x, y TickSpec) GraphOption {
	return func(o *graphOptions) { o.labelsOn, o.specX, o.specY = true, x, y }
}

// WithLegend docks a legend over the chart.
func WithLegend(position LegendPosition, entries ...LegendEntry) GraphOption {
	return func(o *graphOptions) {
		o.legend = &Legend{Entries: entries, Position: position}
	}
}

// WithLayers adds data-space elements drawn between the subject and the
// axis, such as annotations.
func WithLayers(layers ...ChartElement) GraphOption {
	return func(o *graphOptions) { o.layers = append(o.layers, layers...) }
}

// WithOverlays adds screen-space elements drawn after everything else.
func WithOverlays(overlays ...Element) GraphOption {
	return func(o *graphOptions) { o.overlays = append(o.overlays, overlays...) }
}

// Graph composes a chart around one subject element: fitted axes,
// optional grid and tick labels, extra layers and a legend, rendered
// into a viewport. Graphs do not clear the canvas, so several can share
// one surface.
type Graph struct {
	subject ChartElement
	opts    graphOptions
}

// NewGraph builds a chart around the subject.
func NewGraph(subject ChartElement, opts ...GraphOption) *Graph {
	g := &Graph{
		subject: subject,
		opts: graphOptions{
			padding: DefaultAxisPadding,
			ticks:   DefaultAxisTicks,
		},
	}
	for _, opt := range opts {
		opt(&g.opts)
	}
	return g
}

// Viewport returns the viewport the chart renders into, defaulting to
// one that covers the whole canvas.
func (g *Graph) Viewport(c Canvas) Viewport {
	if g.opts.viewport != (Viewport{}) {
		return g.opts.viewport
	}
	w, h := c.Size()
	return NewViewport(0, 0, w, h)
}

// Axis returns the axis the chart will draw: the pinned one, or a fit
// of the subject's data bounds.
func (g *Graph) Axis() Axis {
	if g.opts.axis != nil {
		return *g.opts.axis
	}
	var bounds BBox[Point]
	if g.subject != nil {
		bounds = g.subject.DataBounds()
	}
	return FitAxis(bounds, g.opts.padding, g.opts.ticks)
}

// Render draws the chart onto the canvas. Layer order is grid, subject
// and extra layers clipped to the plot area, then axis, tick labels,
// overlays and legend on top, unclipped.
func (g *Graph) Render(c Canvas) {
	theme := g.opts.theme
	if !g.opts.hasTheme {
		theme = DefaultTheme()
	}
	vp := g.Viewport(c)
	axis := g.Axis()
	inner := vp.InnerBounds()
	view := NewViewTransformer(axis.Bounds, inner)

	Logger().Debug("rendering graph",
		"bounds", axis.Bounds,
		"viewport", vp.OuterBounds(),
		"layers", len(g.opts.layers),
	)

	c.PushClip(inner)
	if g.opts.gridOn {
		grid := &GridLines{
			Axis:        axis,
			Orientation: g.opts.gridOrien,
			StepX:       g.opts.stepX,
			StepY:       g.opts.stepY,
			Style:       g.opts.gridStyle,
		}
		grid.DrawInView(c, &view, &theme)
	}
	if g.subject != nil {
		g.subject.DrawInView(c, &view, &theme)
	}
	for _, layer := range g.opts.layers {
		layer.DrawInView(c, &view, &theme)
	}
	c.PopClip()

	if !g.opts.hideAxis {
		axisEl := &AxisElement{Axis: axis, Style: g.opts.axisStyle}
		axisEl.DrawInView(c, &view, &theme)
	}
	if g.opts.labelsOn {
		labels := &TickLabels{Axis: axis, SpecX: g.opts.specX, SpecY: g.opts.specY}
		labels.DrawInView(c, &view, &theme)
	}
	for _, overlay := range g.opts.overlays {
		overlay.Draw(c, &theme)
	}
	if g.opts.legend != nil {
		legend := *g.opts.legend
		if legend.Viewport == (Viewport{}) {
			legend.Viewport = vp
		}
		legend.Draw(c, &theme)
	}
}
