package locus

import "github.com/chewxy/math32"

// Point represents a position in data space.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// ScreenPoint represents a position in screen space, in pixels.
// The origin is the top-left corner and Y grows downward, so screen
// coordinates are a distinct type from data coordinates: passing one
// where the other is expected is a compile error.
type ScreenPoint struct {
	X, Y float32
}

// SPt is a convenience function to create a ScreenPoint.
func SPt(x, y float32) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

// Add returns the sum of two screen points.
func (p ScreenPoint) Add(q ScreenPoint) ScreenPoint {
	return ScreenPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two screen points.
func (p ScreenPoint) Sub(q ScreenPoint) ScreenPoint {
	return ScreenPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the screen point scaled by a scalar.
func (p ScreenPoint) Mul(s float32) ScreenPoint {
	return ScreenPoint{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two screen points.
func (p ScreenPoint) Distance(q ScreenPoint) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// Length returns the length of the screen vector.
func (p ScreenPoint) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the same direction.
func (p ScreenPoint) Normalize() ScreenPoint {
	length := p.Length()
	if length == 0 {
		return ScreenPoint{}
	}
	return ScreenPoint{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the screen vector rotated by angle radians.
func (p ScreenPoint) Rotate(angle float32) ScreenPoint {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return ScreenPoint{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
