package locus

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %+v, want (4, 6)", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub = %+v, want (2, 2)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v, want (6, 8)", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestScreenPointVectorOps(t *testing.T) {
	const tol = 1e-5

	v := SPt(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}

	n := v.Normalize()
	if math32.Abs(n.Length()-1) > tol {
		t.Errorf("Normalize length = %v, want 1", n.Length())
	}
	if SPt(0, 0).Normalize() != SPt(0, 0) {
		t.Error("Normalize of zero vector should stay zero")
	}

	r := SPt(1, 0).Rotate(math32.Pi / 2)
	if math32.Abs(r.X) > tol || math32.Abs(r.Y-1) > tol {
		t.Errorf("Rotate(pi/2) = %+v, want (0, 1)", r)
	}
}
