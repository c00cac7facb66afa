package seating

import (
	"math"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
)

// SeatOffset is the distance between a table edge and the center of the
// seats placed around it.
const SeatOffset = 12.0

// TableSeats returns exactly max(0, t.Capacity) seat positions in t's local
// frame. A stored position on t.Seats[i] overrides the fallback for seat i;
// seats beyond the capacity are ignored and missing seats use the fallback.
func TableSeats(t chart.Table) []geometry.Point {
	n := max(0, t.Capacity)
	if n == 0 {
		return nil
	}
	fallback := Fallback(t.Shape, t.Width, t.Height, n)
	for i := 0; i < n && i < len(t.Seats); i++ {
		if pos := t.Seats[i].Position; pos != nil {
			fallback[i] = explicit(*pos, t.Width, t.Height)
		}
	}
	return fallback
}

// Fallback returns the shape-derived positions for n seats around a w×h
// table.
func Fallback(shape chart.Shape, w, h float64, n int) []geometry.Point {
	if n <= 0 {
		return nil
	}
	if shape == chart.ShapeRectangular {
		return rectangular(w, h, n)
	}
	return circular(w, h, n)
}

// Angles returns the fallback angle in degrees of each of n seats around a
// round table: 360/n·i − 90.
func Angles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := 360 / float64(n)
	for i := range out {
		out[i] = step*float64(i) - 90
	}
	return out
}

func circular(w, h float64, n int) []geometry.Point {
	c := geometry.Pt(w/2, h/2)
	r := math.Min(w, h)/2 + SeatOffset
	out := make([]geometry.Point, n)
	for i, deg := range Angles(n) {
		out[i] = polar(c, r, deg)
	}
	return out
}

func rectangular(w, h float64, n int) []geometry.Point {
	out := make([]geometry.Point, 0, n)
	out = append(out, geometry.Pt(-SeatOffset, h/2))
	if n == 1 {
		return out
	}
	out = append(out, geometry.Pt(w+SeatOffset, h/2))

	rest := n - 2
	top := (rest + 1) / 2
	bottom := rest / 2
	out = append(out, edge(w, -SeatOffset, top)...)
	out = append(out, edge(w, h+SeatOffset, bottom)...)
	return out
}

// edge spaces k seats evenly across width w at height y.
func edge(w, y float64, k int) []geometry.Point {
	out := make([]geometry.Point, k)
	for j := range out {
		out[j] = geometry.Pt(w*float64(j+1)/float64(k+1), y)
	}
	return out
}

func polar(c geometry.Point, r, deg float64) geometry.Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return geometry.Pt(c.X+r*cos, c.Y+r*sin)
}

func explicit(p chart.SeatPosition, w, h float64) geometry.Point {
	switch p.Kind {
	case chart.PositionPolar:
		c := geometry.Pt(w/2, h/2)
		return polar(c, math.Min(w, h)/2+p.Offset, p.Angle)
	case chart.PositionSide:
		switch p.Side {
		case chart.SideBottom:
			return geometry.Pt(p.Offset, h+SeatOffset)
		case chart.SideLeft:
			return geometry.Pt(-SeatOffset, p.Offset)
		case chart.SideRight:
			return geometry.Pt(w+SeatOffset, p.Offset)
		default:
			return geometry.Pt(p.Offset, -SeatOffset)
		}
	default:
		return geometry.Pt(p.X, p.Y)
	}
}

// RowSeats returns one position per seat of r in the row's local frame.
// Seats run left to right at the vertical center of the row's nominal box,
// with an extra chart.RowAisleGap after every aisle index. Seats with a
// stored position use it, resolved against the row's nominal box.
func RowSeats(r chart.Row) []geometry.Point {
	if len(r.Seats) == 0 {
		return nil
	}
	aisles := make(map[int]bool)
	for _, a := range r.Aisles() {
		aisles[a] = true
	}
	w, h := chart.RowSize(len(r.Seats), len(aisles))
	out := make([]geometry.Point, len(r.Seats))
	x := chart.RowPadding + chart.RowSeatSpacing/2
	for i, seat := range r.Seats {
		if seat.Position != nil {
			out[i] = explicit(*seat.Position, w, h)
		} else {
			out[i] = geometry.Pt(x, chart.RowHeight/2)
		}
		x += chart.RowSeatSpacing
		if aisles[i] {
			x += chart.RowAisleGap
		}
	}
	return out
}

// Place converts local seat positions of an element at bounds, rotated by
// rotation degrees about its center, into model space.
func Place(local []geometry.Point, bounds geometry.Rect, rotation float64) []geometry.Point {
	out := make([]geometry.Point, len(local))
	c := bounds.Center()
	for i, p := range local {
		out[i] = p.Add(bounds.Min()).Rotate(c, rotation)
	}
	return out
}
