package locus

import "testing"

func TestDrawMarkShapes(t *testing.T) {
	at := SPt(10, 20)

	t.Run("circle is the default", func(t *testing.T) {
		rec := newRecordCanvas(100, 100)
		DrawMark(rec, at, MarkStyle{Color: Red})
		if len(rec.circles) != 1 {
			t.Fatalf("recorded %d circles, want 1", len(rec.circles))
		}
		c := rec.circles[0]
		if c.at != at || c.radius != DefaultMarkSize || c.color != Red {
			t.Errorf("circle = %+v, want at %v radius %v color %v", c, at, DefaultMarkSize, Red)
		}
	})

	t.Run("square", func(t *testing.T) {
		rec := newRecordCanvas(100, 100)
		DrawMark(rec, at, MarkStyle{Shape: ShapeSquare, Size: 4, Color: Blue})
		if len(rec.rects) != 1 {
			t.Fatalf("recorded %d rects, want 1", len(rec.rects))
		}
		box := rec.rects[0].box
		if box.Min != SPt(6, 16) || box.Max != SPt(14, 24) {
			t.Errorf("square box = %v..%v, want (6,16)..(14,24)", box.Min, box.Max)
		}
	})

	t.Run("triangle", func(t *testing.T) {
		rec := newRecordCanvas(100, 100)
		DrawMark(rec, at, MarkStyle{Shape: ShapeTriangle, Size: 3, Color: Green})
		if len(rec.triangles) != 1 {
			t.Fatalf("recorded %d triangles, want 1", len(rec.triangles))
		}
		tr := rec.triangles[0]
		if tr.a != SPt(10, 17) || tr.b != SPt(7, 23) || tr.c != SPt(13, 23) {
			t.Errorf("triangle = %+v, want apex (10,17) base (7,23) (13,23)", tr)
		}
	})
}
