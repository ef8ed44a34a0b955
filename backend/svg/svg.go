// Package svg renders locus charts to Scalable Vector Graphics.
//
// The canvas streams markup to its writer as primitives arrive, so a
// finished document needs a matching Close call. Text metrics come from
// the same built-in font the raster backend uses, keeping layout
// identical across backends.
package svg

import (
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"
	"github.com/chewxy/math32"

	"github.com/gogpu/locus"
)

// Canvas implements locus.Canvas by writing SVG markup to a writer.
type Canvas struct {
	doc      *svgo.SVG
	width    int
	height   int
	nextClip int
	clips    []int
	closed   bool
}

// New starts an SVG document of the given pixel size.
func New(w io.Writer, width, height int) *Canvas {
	c := &Canvas{doc: svgo.New(w), width: width, height: height}
	c.doc.Start(width, height)
	return c
}

// Close ends any open clip groups and the document. The canvas must not
// be used afterwards.
func (c *Canvas) Close() {
	if c.closed {
		return
	}
	for range c.clips {
		c.doc.Gend()
	}
	c.clips = nil
	c.doc.End()
	c.closed = true
}

// Size implements locus.Canvas.
func (c *Canvas) Size() (width, height float32) {
	return float32(c.width), float32(c.height)
}

// Clear implements locus.Canvas. Open clip groups are suspended so the
// fill always covers the whole surface.
func (c *Canvas) Clear(col locus.RGBA) {
	for range c.clips {
		c.doc.Gend()
	}
	c.doc.Rect(0, 0, c.width, c.height, fillStyle(col))
	for _, id := range c.clips {
		c.doc.Group(clipRef(id))
	}
}

// PushClip implements locus.Canvas. Nested clips intersect through
// group nesting.
func (c *Canvas) PushClip(r locus.BBox[locus.ScreenPoint]) {
	id := c.nextClip
	c.nextClip++
	c.doc.ClipPath(fmt.Sprintf(`id="clip%d"`, id))
	c.doc.Rect(px(r.Min.X), px(r.Min.Y), px(r.Width()), px(r.Height()))
	c.doc.ClipEnd()
	c.doc.Group(clipRef(id))
	c.clips = append(c.clips, id)
}

// PopClip implements locus.Canvas.
func (c *Canvas) PopClip() {
	if len(c.clips) == 0 {
		return
	}
	c.clips = c.clips[:len(c.clips)-1]
	c.doc.Gend()
}

// StrokeLine implements locus.Canvas.
func (c *Canvas) StrokeLine(from, to locus.ScreenPoint, width float32, col locus.RGBA) {
	c.doc.Line(px(from.X), px(from.Y), px(to.X), px(to.Y), strokeStyle(col, width))
}

// FillRect implements locus.Canvas.
func (c *Canvas) FillRect(r locus.BBox[locus.ScreenPoint], col locus.RGBA) {
	c.doc.Rect(px(r.Min.X), px(r.Min.Y), px(r.Width()), px(r.Height()), fillStyle(col))
}

// FillCircle implements locus.Canvas.
func (c *Canvas) FillCircle(center locus.ScreenPoint, radius float32, col locus.RGBA) {
	c.doc.Circle(px(center.X), px(center.Y), px(radius), fillStyle(col))
}

// FillTriangle implements locus.Canvas.
func (c *Canvas) FillTriangle(a, b, d locus.ScreenPoint, col locus.RGBA) {
	xs := []int{px(a.X), px(b.X), px(d.X)}
	ys := []int{px(a.Y), px(b.Y), px(d.Y)}
	c.doc.Polygon(xs, ys, fillStyle(col))
}

// DrawText implements locus.Canvas, mapping the anchor onto SVG text
// alignment attributes.
func (c *Canvas) DrawText(s string, at locus.ScreenPoint, style locus.TextStyle) {
	if s == "" {
		return
	}
	c.doc.Text(px(at.X), px(at.Y), s, textStyle(style))
}

// MeasureText implements locus.Canvas using the shared built-in font
// metrics.
func (c *Canvas) MeasureText(s string, size float32) (width, height float32) {
	return locus.MeasureString(s, size)
}

func clipRef(id int) string {
	return fmt.Sprintf(`clip-path="url(#clip%d)"`, id)
}

func px(v float32) int {
	return int(math32.Round(v))
}

func channel(v float32) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		n = 0
	} else if n > 255 {
		n = 255
	}
	return n
}

func fillStyle(c locus.RGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f",
		channel(c.R), channel(c.G), channel(c.B), c.A)
}

func strokeStyle(c locus.RGBA, width float32) string {
	return fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-opacity:%.3f;stroke-width:%.2f;stroke-linecap:round",
		channel(c.R), channel(c.G), channel(c.B), c.A, width)
}

func textStyle(s locus.TextStyle) string {
	anchor := "start"
	switch s.Anchor.H {
	case locus.AlignCenter:
		anchor = "middle"
	case locus.AlignRight:
		anchor = "end"
	}
	baseline := "alphabetic"
	switch s.Anchor.V {
	case locus.AlignTop:
		baseline = "hanging"
	case locus.AlignMiddle:
		baseline = "central"
	}
	return fmt.Sprintf("font-family:sans-serif;font-size:%.1fpx;fill:rgb(%d,%d,%d);fill-opacity:%.3f;text-anchor:%s;dominant-baseline:%s",
		s.SizeOrDefault(), channel(s.Color.R), channel(s.Color.G), channel(s.Color.B), s.Color.A, anchor, baseline)
}
