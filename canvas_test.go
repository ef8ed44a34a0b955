package locus

// recordCanvas captures draw calls so element tests can assert on what
// was emitted without rasterizing anything.
type recordCanvas struct {
	w, h float32

	clears    int
	lines     []recordedLine
	rects     []recordedRect
	circles   []recordedCircle
	triangles []recordedTriangle
	texts     []recordedText

	clipDepth  int
	maxClip    int
	pushes     int
	unbalanced bool
}

type recordedLine struct {
	from, to ScreenPoint
	width    float32
	color    RGBA
}

type recordedRect struct {
	box   BBox[ScreenPoint]
	color RGBA
}

type recordedCircle struct {
	at     ScreenPoint
	radius float32
	color  RGBA
}

type recordedTriangle struct {
	a, b, c ScreenPoint
	color   RGBA
}

type recordedText struct {
	s     string
	at    ScreenPoint
	style TextStyle
}

func newRecordCanvas(w, h float32) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (r *recordCanvas) Size() (width, height float32) { return r.w, r.h }

func (r *recordCanvas) Clear(RGBA) { r.clears++ }

func (r *recordCanvas) StrokeLine(from, to ScreenPoint, width float32, c RGBA) {
	r.lines = append(r.lines, recordedLine{from: from, to: to, width: width, color: c})
}

func (r *recordCanvas) FillRect(box BBox[ScreenPoint], c RGBA) {
	r.rects = append(r.rects, recordedRect{box: box, color: c})
}

func (r *recordCanvas) FillCircle(at ScreenPoint, radius float32, c RGBA) {
	r.circles = append(r.circles, recordedCircle{at: at, radius: radius, color: c})
}

func (r *recordCanvas) FillTriangle(a, b, c ScreenPoint, col RGBA) {
	r.triangles = append(r.triangles, recordedTriangle{a: a, b: b, c: c, color: col})
}

func (r *recordCanvas) DrawText(s string, at ScreenPoint, style TextStyle) {
	r.texts = append(r.texts, recordedText{s: s, at: at, style: style})
}

func (r *recordCanvas) MeasureText(s string, size float32) (width, height float32) {
	return float32(len(s)) * size * 0.6, size
}

func (r *recordCanvas) PushClip(BBox[ScreenPoint]) {
	r.clipDepth++
	r.pushes++
	if r.clipDepth > r.maxClip {
		r.maxClip = r.clipDepth
	}
}

func (r *recordCanvas) PopClip() {
	r.clipDepth--
	if r.clipDepth < 0 {
		r.unbalanced = true
	}
}

var _ Canvas = (*recordCanvas)(nil)

func (r *recordCanvas) textStrings() []string {
	out := make([]string, len(r.texts))
	for i, tx := range r.texts {
		out[i] = tx.s
	}
	return out
}
