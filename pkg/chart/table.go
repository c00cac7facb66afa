package chart

import "github.com/matzehuels/seatplan/pkg/geometry"

// Default table footprints.
const (
	RoundSize        = 120.0
	RectangularWidth = 200.0
	RectangularDepth = 100.0
	CustomWidth      = 150.0
	CustomDepth      = 100.0
	SpecialWidth     = 300.0
	SpecialDepth     = 200.0
)

// DefaultSize returns the placeholder footprint for a new table. Special
// areas (capacity 0) get a larger footprint regardless of shape.
func DefaultSize(shape Shape, capacity int) (w, h float64) {
	if capacity <= 0 {
		return SpecialWidth, SpecialDepth
	}
	switch shape {
	case ShapeRound, ShapeSquare:
		return RoundSize, RoundSize
	case ShapeRectangular:
		return RectangularWidth, RectangularDepth
	default:
		return CustomWidth, CustomDepth
	}
}

// IsSpecialArea reports whether t marks a non-seating zone.
func (t Table) IsSpecialArea() bool { return t.Capacity <= 0 }

// Bounds returns the axis-aligned footprint of t, ignoring rotation.
func (t Table) Bounds() geometry.Rect {
	return geometry.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Label returns the plaque text for t.
func (t Table) Label() string {
	if t.Name != "" {
		return t.Name
	}
	if t.IsSpecialArea() {
		return "Area"
	}
	return "Table " + itoa(t.Number)
}

// Reserved reports whether the table carries a reservation badge.
func (t Table) Reserved() bool {
	return t.Reservation != nil && t.Reservation.Status == ReservationReserved
}

// WithCapacity returns a copy of t carrying exactly n seats. Existing seats
// are kept in order; missing ones are generated. Capacity 0 turns the table
// into a special area and drops every seat.
func (t Table) WithCapacity(n int) Table {
	n = max(0, n)
	t.Capacity = n
	seats := make([]Seat, 0, n)
	for i := 0; i < n && i < len(t.Seats); i++ {
		seats = append(seats, t.Seats[i])
	}
	for i := len(seats); i < n; i++ {
		seats = append(seats, NewSeat(i+1))
	}
	if n == 0 {
		seats = nil
	}
	t.Seats = seats
	return t
}

// WithPosition returns a copy of t moved to (x, y).
func (t Table) WithPosition(x, y float64) Table {
	t.X, t.Y = x, y
	return t
}

// WithRect returns a copy of t with position and size taken from r.
func (t Table) WithRect(r geometry.Rect) Table {
	t.X, t.Y, t.Width, t.Height = r.X, r.Y, r.Width, r.Height
	return t
}

// NextTableNumber returns one more than the highest table number in tables.
func NextTableNumber(tables []Table) int {
	n := 0
	for _, t := range tables {
		n = max(n, t.Number)
	}
	return n + 1
}
