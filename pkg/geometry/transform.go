package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ViewTransform maps model coordinates onto the screen:
//
//	screen = M·model + T,   M = [A B; C D],   T = (TX, TY)
//
// A pan/zoom viewport is the special case A = D = zoom, B = C = 0. Terminal
// hosts use different X and Y scales because character cells are not square.
type ViewTransform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the transform used when no viewport is active.
func Identity() ViewTransform {
	return ViewTransform{A: 1, D: 1}
}

// NewViewTransform returns a uniform zoom followed by a pan in screen pixels.
func NewViewTransform(zoom, panX, panY float64) ViewTransform {
	return ViewTransform{A: zoom, D: zoom, TX: panX, TY: panY}
}

// NewCellTransform returns an anisotropic scale followed by a pan.
func NewCellTransform(sx, sy, panX, panY float64) ViewTransform {
	return ViewTransform{A: sx, D: sy, TX: panX, TY: panY}
}

// ModelToScreen maps a model-space point to screen space.
func (t ViewTransform) ModelToScreen(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// ScreenToModel maps a screen-space point back into model space using the
// exact inverse of t. A singular transform maps points unchanged.
func (t ViewTransform) ScreenToModel(p Point) Point {
	inv, ok := t.Inverse()
	if !ok {
		return p
	}
	return inv.ModelToScreen(p)
}

// ScreenDeltaToModel converts a pointer displacement into a model-space
// displacement. Translation does not affect deltas, so only the linear part
// of the inverse is applied.
func (t ViewTransform) ScreenDeltaToModel(d Point) Point {
	inv, ok := t.Inverse()
	if !ok {
		return d
	}
	return Point{
		X: inv.A*d.X + inv.B*d.Y,
		Y: inv.C*d.X + inv.D*d.Y,
	}
}

// Zoom returns the average scale factor of t, which is the zoom level for
// uniform transforms.
func (t ViewTransform) Zoom() float64 {
	return math.Sqrt(math.Abs(t.A*t.D - t.B*t.C))
}

// Inverse returns the inverse transform. ok is false when t is singular.
func (t ViewTransform) Inverse() (inv ViewTransform, ok bool) {
	m := mat.NewDense(3, 3, []float64{
		t.A, t.B, t.TX,
		t.C, t.D, t.TY,
		0, 0, 1,
	})
	if math.Abs(mat.Det(m)) < 1e-12 {
		return ViewTransform{}, false
	}
	var out mat.Dense
	if err := out.Inverse(m); err != nil {
		return ViewTransform{}, false
	}
	return ViewTransform{
		A: out.At(0, 0), B: out.At(0, 1), TX: out.At(0, 2),
		C: out.At(1, 0), D: out.At(1, 1), TY: out.At(1, 2),
	}, true
}
