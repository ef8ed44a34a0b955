package locus

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrInvalidBounds is returned when a bounding box is constructed with a
// minimum corner that exceeds the maximum corner.
var ErrInvalidBounds = errors.New("locus: bounding box minimum exceeds maximum")

// xy is the shared underlying layout of Point and ScreenPoint. Generic
// bounding-box code converts through it to reach the coordinates of either
// space without giving up the type distinction between them.
type xy = struct{ X, Y float32 }

// BBox is an axis-aligned rectangle in either data space (BBox[Point]) or
// screen space (BBox[ScreenPoint]). Min is always the componentwise minimum
// corner and Max the componentwise maximum.
type BBox[P Point | ScreenPoint] struct {
	Min, Max P
}

// NewBBox creates a bounding box from two arbitrary corners, ordering the
// components so that Min <= Max holds on both axes.
func NewBBox[P Point | ScreenPoint](a, b P) BBox[P] {
	ca, cb := xy(a), xy(b)
	min := xy{X: math32.Min(ca.X, cb.X), Y: math32.Min(ca.Y, cb.Y)}
	max := xy{X: math32.Max(ca.X, cb.X), Y: math32.Max(ca.Y, cb.Y)}
	return BBox[P]{Min: P(min), Max: P(max)}
}

// BBoxFromMinMax creates a bounding box from corners that are already
// ordered. It returns ErrInvalidBounds if min exceeds max on either axis.
func BBoxFromMinMax[P Point | ScreenPoint](min, max P) (BBox[P], error) {
	cmin, cmax := xy(min), xy(max)
	if cmin.X > cmax.X || cmin.Y > cmax.Y {
		return BBox[P]{}, ErrInvalidBounds
	}
	return BBox[P]{Min: min, Max: max}, nil
}

// Width returns the horizontal extent of the box.
func (b BBox[P]) Width() float32 {
	return xy(b.Max).X - xy(b.Min).X
}

// Height returns the vertical extent of the box.
func (b BBox[P]) Height() float32 {
	return xy(b.Max).Y - xy(b.Min).Y
}

// Center returns the midpoint of the box.
func (b BBox[P]) Center() P {
	min, max := xy(b.Min), xy(b.Max)
	return P(xy{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2})
}

// Contains reports whether p lies inside the box, borders included.
func (b BBox[P]) Contains(p P) bool {
	c, min, max := xy(p), xy(b.Min), xy(b.Max)
	return c.X >= min.X && c.X <= max.X && c.Y >= min.Y && c.Y <= max.Y
}

// Union returns the smallest box covering both b and o.
func (b BBox[P]) Union(o BBox[P]) BBox[P] {
	bmin, bmax := xy(b.Min), xy(b.Max)
	omin, omax := xy(o.Min), xy(o.Max)
	return BBox[P]{
		Min: P(xy{X: math32.Min(bmin.X, omin.X), Y: math32.Min(bmin.Y, omin.Y)}),
		Max: P(xy{X: math32.Max(bmax.X, omax.X), Y: math32.Max(bmax.Y, omax.Y)}),
	}
}

// Pad returns the box grown by d on every side. A negative d shrinks it;
// the result is normalized so it never inverts.
func (b BBox[P]) Pad(d float32) BBox[P] {
	min, max := xy(b.Min), xy(b.Max)
	return NewBBox(
		P(xy{X: min.X - d, Y: min.Y - d}),
		P(xy{X: max.X + d, Y: max.Y + d}),
	)
}
