package locus

import (
	"image"
	"image/color"
	"io"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas renders chart primitives onto a Pixmap with straight
// alpha source-over blending. It is not safe for concurrent use.
type RasterCanvas struct {
	pm    *Pixmap
	clips []image.Rectangle
}

// NewRasterCanvas creates a canvas backed by a fresh pixmap.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{pm: NewPixmap(width, height)}
}

// Pixmap returns the backing pixel buffer.
func (rc *RasterCanvas) Pixmap() *Pixmap {
	return rc.pm
}

// WritePNG encodes the canvas as PNG.
func (rc *RasterCanvas) WritePNG(w io.Writer) error {
	return rc.pm.WritePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (rc *RasterCanvas) SavePNG(path string) error {
	return rc.pm.SavePNG(path)
}

// Size implements Canvas.
func (rc *RasterCanvas) Size() (width, height float32) {
	return float32(rc.pm.Width()), float32(rc.pm.Height())
}

// Clear implements Canvas. The whole surface is filled regardless of
// any active clip.
func (rc *RasterCanvas) Clear(c RGBA) {
	rc.pm.Clear(c)
}

func (rc *RasterCanvas) clip() image.Rectangle {
	if len(rc.clips) == 0 {
		return rc.pm.Bounds()
	}
	return rc.clips[len(rc.clips)-1]
}

// PushClip implements Canvas.
func (rc *RasterCanvas) PushClip(r BBox[ScreenPoint]) {
	next := image.Rect(
		int(math32.Floor(r.Min.X)), int(math32.Floor(r.Min.Y)),
		int(math32.Ceil(r.Max.X)), int(math32.Ceil(r.Max.Y)),
	).Intersect(rc.clip())
	rc.clips = append(rc.clips, next)
}

// PopClip implements Canvas.
func (rc *RasterCanvas) PopClip() {
	if len(rc.clips) > 0 {
		rc.clips = rc.clips[:len(rc.clips)-1]
	}
}

// FillRect implements Canvas.
func (rc *RasterCanvas) FillRect(r BBox[ScreenPoint], col RGBA) {
	area := image.Rect(
		roundPx(r.Min.X), roundPx(r.Min.Y),
		roundPx(r.Max.X), roundPx(r.Max.Y),
	).Intersect(rc.clip())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			rc.pm.BlendPixel(x, y, col)
		}
	}
}

// FillCircle implements Canvas. Pixels whose centers fall inside the
// radius are covered.
func (rc *RasterCanvas) FillCircle(center ScreenPoint, radius float32, col RGBA) {
	if radius <= 0 {
		return
	}
	area := image.Rect(
		int(math32.Floor(center.X-radius)), int(math32.Floor(center.Y-radius)),
		int(math32.Ceil(center.X+radius))+1, int(math32.Ceil(center.Y+radius))+1,
	).Intersect(rc.clip())
	r2 := radius * radius
	for y := area.Min.Y; y < area.Max.Y; y++ {
		dy := float32(y) + 0.5 - center.Y
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float32(x) + 0.5 - center.X
			if dx*dx+dy*dy <= r2 {
				rc.pm.BlendPixel(x, y, col)
			}
		}
	}
}

// FillTriangle implements Canvas. Either winding is accepted.
func (rc *RasterCanvas) FillTriangle(a, b, c ScreenPoint, col RGBA) {
	d := edgeFn(a, b, c)
	if d == 0 {
		return
	}
	area := image.Rect(
		int(math32.Floor(math32.Min(a.X, math32.Min(b.X, c.X)))),
		int(math32.Floor(math32.Min(a.Y, math32.Min(b.Y, c.Y)))),
		int(math32.Ceil(math32.Max(a.X, math32.Max(b.X, c.X))))+1,
		int(math32.Ceil(math32.Max(a.Y, math32.Max(b.Y, c.Y))))+1,
	).Intersect(rc.clip())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			p := SPt(float32(x)+0.5, float32(y)+0.5)
			w0 := edgeFn(a, b, p)
			w1 := edgeFn(b, c, p)
			w2 := edgeFn(c, a, p)
			inside := w0 >= 0 && w1 >= 0 && w2 >= 0
			if d < 0 {
				inside = w0 <= 0 && w1 <= 0 && w2 <= 0
			}
			if inside {
				rc.pm.BlendPixel(x, y, col)
			}
		}
	}
}

// StrokeLine implements Canvas. Hairline widths walk pixel by pixel;
// wider strokes fill an oriented quad.
func (rc *RasterCanvas) StrokeLine(from, to ScreenPoint, width float32, col RGBA) {
	if width <= 0 {
		width = 1
	}
	delta := to.Sub(from)
	if delta.Length() <= 0 {
		return
	}
	if width <= 1.5 {
		rc.thinLine(from, to, col)
		return
	}
	n := delta.Normalize()
	perp := SPt(-n.Y, n.X).Mul(width / 2)
	p0 := from.Add(perp)
	p1 := to.Add(perp)
	p2 := to.Sub(perp)
	p3 := from.Sub(perp)
	rc.FillTriangle(p0, p1, p2, col)
	rc.FillTriangle(p0, p2, p3, col)
}

func (rc *RasterCanvas) thinLine(from, to ScreenPoint, col RGBA) {
	area := rc.clip()
	delta := to.Sub(from)
	steps := int(math32.Ceil(math32.Max(math32.Abs(delta.X), math32.Abs(delta.Y))))
	if steps < 1 {
		steps = 1
	}
	// Track the last pixel so translucent strokes never blend one spot
	// twice.
	lastX, lastY := -1<<30, -1<<30
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		x := roundPx(from.X + delta.X*t)
		y := roundPx(from.Y + delta.Y*t)
		if x == lastX && y == lastY {
			continue
		}
		lastX, lastY = x, y
		if image.Pt(x, y).In(area) {
			rc.pm.BlendPixel(x, y, col)
		}
	}
}

// DrawText implements Canvas, compositing glyphs of the built-in font.
func (rc *RasterCanvas) DrawText(s string, at ScreenPoint, style TextStyle) {
	if s == "" {
		return
	}
	size := style.SizeOrDefault()
	face, err := chartFace(size)
	if err != nil {
		Logger().Warn("text skipped, font unavailable", "error", err)
		return
	}
	w, h := MeasureString(s, size)
	topLeft := at.Add(AnchorOffset(style.Anchor, w, h))
	d := &font.Drawer{
		Dst:  clippedImage{rc.pm, rc.clip()},
		Src:  image.NewUniform(style.Color.Color()),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(topLeft.X),
			Y: floatToFixed(topLeft.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
}

// MeasureText implements Canvas.
func (rc *RasterCanvas) MeasureText(s string, size float32) (width, height float32) {
	return MeasureString(s, size)
}

// clippedImage filters Set calls through a clip rectangle so glyph
// rasterization honors the canvas clip.
type clippedImage struct {
	*Pixmap
	rect image.Rectangle
}

func (ci clippedImage) Set(x, y int, c color.Color) {
	if image.Pt(x, y).In(ci.rect) {
		ci.Pixmap.Set(x, y, c)
	}
}

func edgeFn(a, b, p ScreenPoint) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func roundPx(v float32) int {
	return int(math32.Round(v))
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}
