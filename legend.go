package locus

import "github.com/chewxy/math32"

// LegendPosition selects the viewport corner a legend docks to.
type LegendPosition int

const (
	LegendTopRight LegendPosition = iota
	LegendTopLeft
	LegendBottomLeft
	LegendBottomRight
)

// Legend layout constants, in pixels.
const (
	legendPadding  float32 = 8
	legendMargin   float32 = 10
	legendMarkSize float32 = 4
	legendRowGap   float32 = 4
)

// LegendEntry is one row of a legend: a mark and its series label.
type LegendEntry struct {
	Label string
	Color RGBA
	Shape Shape
}

// Legend lists series names with their marks over a translucent
// backdrop, docked to a corner of its viewport. A zero Viewport docks
// to the whole canvas.
type Legend struct {
	Entries    []LegendEntry
	Position   LegendPosition
	Viewport   Viewport
	Background RGBA
	Style      TextStyle
}

// NewLegend returns a legend with the given rows docked top right.
func NewLegend(entries ...LegendEntry) *Legend {
	return &Legend{Entries: entries}
}

// Draw renders the legend box onto the canvas.
func (l *Legend) Draw(c Canvas, t *Theme) {
	if len(l.Entries) == 0 {
		return
	}
	style := l.Style
	style.Color = style.Color.Or(t.Text)
	style.Anchor = AnchorLeftMiddle
	size := style.SizeOrDefault()

	var textW, rowH float32
	for _, e := range l.Entries {
		w, h := c.MeasureText(e.Label, size)
		textW = math32.Max(textW, w)
		rowH = math32.Max(rowH, math32.Max(h, 2*legendMarkSize))
	}
	markSpan := 2*legendMarkSize + legendPadding
	boxW := 2*legendPadding + markSpan + textW
	boxH := 2*legendPadding + float32(len(l.Entries))*rowH + float32(len(l.Entries)-1)*legendRowGap

	vp := l.Viewport
	if vp == (Viewport{}) {
		w, h := c.Size()
		vp = NewViewport(0, 0, w, h)
	}
	outer := vp.OuterBounds()
	var origin ScreenPoint
	switch l.Position {
	case LegendTopLeft:
		origin = SPt(outer.Min.X+legendMargin, outer.Min.Y+legendMargin)
	case LegendBottomLeft:
		origin = SPt(outer.Min.X+legendMargin, outer.Max.Y-legendMargin-boxH)
	case LegendBottomRight:
		origin = SPt(outer.Max.X-legendMargin-boxW, outer.Max.Y-legendMargin-boxH)
	default:
		origin = SPt(outer.Max.X-legendMargin-boxW, outer.Min.Y+legendMargin)
	}

	backdrop := l.Background.Or(RGBA2(0, 0, 0, 140.0/255))
	c.FillRect(NewBBox(origin, origin.Add(SPt(boxW, boxH))), backdrop)

	y := origin.Y + legendPadding
	for _, e := range l.Entries {
		mid := y + rowH/2
		DrawMark(c, SPt(origin.X+legendPadding+legendMarkSize, mid), MarkStyle{
			Shape: e.Shape,
			Size:  legendMarkSize,
			Color: e.Color,
		})
		c.DrawText(e.Label, SPt(origin.X+legendPadding+markSpan, mid), style)
		y += rowH + legendRowGap
	}
}
