package geometry

import "math"

// SnapToGrid rounds v to the nearest multiple of GridSize. Halfway values
// round away from zero. SnapToGrid(SnapToGrid(v)) == SnapToGrid(v).
func SnapToGrid(v float64) float64 {
	return math.Round(v/GridSize) * GridSize
}

// SnapPoint snaps both coordinates of p.
func SnapPoint(p Point) Point {
	return Point{X: SnapToGrid(p.X), Y: SnapToGrid(p.Y)}
}

// ConstrainToBounds clamps (x, y) so that a w×h element stays inside the
// canvas: the result lies in [0, CanvasWidth-w] × [0, CanvasHeight-h]. An
// element wider or taller than the canvas is pinned to 0 on that axis.
func ConstrainToBounds(x, y, w, h float64) (float64, float64) {
	return clamp(x, 0, CanvasWidth-w), clamp(y, 0, CanvasHeight-h)
}

// ConstrainRect applies ConstrainToBounds to r's position.
func ConstrainRect(r Rect) Rect {
	r.X, r.Y = ConstrainToBounds(r.X, r.Y, r.Width, r.Height)
	return r
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
