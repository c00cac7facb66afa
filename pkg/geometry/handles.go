package geometry

// HandleSize is the side length of a resize handle in model units.
const HandleSize = 16.0

// Corner names one corner of a rectangle.
type Corner string

const (
	CornerNW Corner = "nw"
	CornerNE Corner = "ne"
	CornerSW Corner = "sw"
	CornerSE Corner = "se"
)

// Corners lists the corners in hit-test order.
var Corners = []Corner{CornerNW, CornerNE, CornerSW, CornerSE}

// Corner returns the position of corner c of r.
func (r Rect) Corner(c Corner) Point {
	switch c {
	case CornerNE:
		return Point{X: r.MaxX(), Y: r.Y}
	case CornerSW:
		return Point{X: r.X, Y: r.MaxY()}
	case CornerSE:
		return Point{X: r.MaxX(), Y: r.MaxY()}
	default:
		return Point{X: r.X, Y: r.Y}
	}
}

// HandleRect returns the HandleSize square centered on corner c of r.
func HandleRect(r Rect, c Corner) Rect {
	p := r.Corner(c)
	return Rect{X: p.X - HandleSize/2, Y: p.Y - HandleSize/2, Width: HandleSize, Height: HandleSize}
}
