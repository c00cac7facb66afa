package geometry

import "math"

// Canvas and grid constants. All element geometry is expressed in these units.
const (
	CanvasWidth  = 3000.0
	CanvasHeight = 2000.0
	GridSize     = 50.0

	MinWidth  = 100.0
	MinHeight = 80.0
)

// Point is a 2D coordinate, either in model space or in screen space
// depending on context.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rotate rotates p around c by deg degrees (clockwise on screen, since Y
// points down).
func (p Point) Rotate(c Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{X: c.X + dx*cos - dy*sin, Y: c.Y + dx*sin + dy*cos}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromPoints returns the normalized rectangle spanning corners a and b.
func RectFromPoints(a, b Point) Rect {
	x1, x2 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y1, y2 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.MaxX(), Y: r.MaxY()} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Overlaps reports whether r and o share interior area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X &&
		r.Y < o.MaxY() && r.MaxY() > o.Y
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return RectFromPoints(
		Point{X: math.Min(r.X, o.X), Y: math.Min(r.Y, o.Y)},
		Point{X: math.Max(r.MaxX(), o.MaxX()), Y: math.Max(r.MaxY(), o.MaxY())},
	)
}

// Rotated returns the axis-aligned box around r turned by deg degrees about
// its center.
func (r Rect) Rotated(deg float64) Rect {
	if math.Mod(deg, 360) == 0 {
		return r
	}
	c := r.Center()
	out := Rect{X: math.Inf(1), Y: math.Inf(1)}
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range []Point{r.Min(), {X: r.MaxX(), Y: r.Y}, r.Max(), {X: r.X, Y: r.MaxY()}} {
		q := p.Rotate(c, deg)
		out.X, out.Y = math.Min(out.X, q.X), math.Min(out.Y, q.Y)
		maxX, maxY = math.Max(maxX, q.X), math.Max(maxY, q.Y)
	}
	out.Width, out.Height = maxX-out.X, maxY-out.Y
	return out
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}
