package chart

import (
	"slices"
	"strconv"

	"github.com/matzehuels/seatplan/pkg/geometry"
)

// Row geometry. A row has no stored size; its nominal box is derived from
// its seat count and aisles.
const (
	RowSeatSpacing = 30.0
	RowAisleGap    = 30.0
	RowPadding     = 20.0
	RowHeight      = 80.0

	rowDefaultX = 100.0
	rowDefaultY = 100.0
)

// AisleThreshold is the row capacity from which a new row gets a center
// aisle.
const AisleThreshold = 15

// RowSize returns the nominal bounding box size of a row with n seats and
// the given number of aisle breaks.
func RowSize(n, aisles int) (w, h float64) {
	w = 2*RowPadding + float64(n)*RowSeatSpacing + float64(aisles)*RowAisleGap
	return max(geometry.MinWidth, w), RowHeight
}

// DefaultAisles returns the aisle indices a new row of n seats receives.
func DefaultAisles(n int) []int {
	if n < AisleThreshold {
		return nil
	}
	return []int{n/2 - 1}
}

// Aisles returns the valid aisle indices of r, sorted and deduplicated.
// Indices that would leave no seat after the aisle are dropped.
func (r Row) Aisles() []int {
	var out []int
	for _, a := range r.AisleAfter {
		if a >= 0 && a < len(r.Seats)-1 {
			out = append(out, a)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Origin returns the row's top-left corner. index is the row's position
// among all rows of the chart and only matters when no explicit position is
// stored.
func (r Row) Origin(index int) geometry.Point {
	p := geometry.Point{
		X: rowDefaultX,
		Y: rowDefaultY + float64(index)*(RowHeight+geometry.GridSize),
	}
	if r.X != nil {
		p.X = *r.X
	}
	if r.Y != nil {
		p.Y = *r.Y
	}
	return p
}

// Bounds returns the row's nominal bounding box.
func (r Row) Bounds(index int) geometry.Rect {
	o := r.Origin(index)
	w, h := RowSize(len(r.Seats), len(r.Aisles()))
	return geometry.Rect{X: o.X, Y: o.Y, Width: w, Height: h}
}

// WithPosition returns a copy of r pinned at (x, y).
func (r Row) WithPosition(x, y float64) Row {
	r.X, r.Y = &x, &y
	return r
}

// Label sequence: A..Z, AA..AZ, BA..., like spreadsheet columns.

// RowLabel returns the label for the i-th row (zero-based).
func RowLabel(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}

// NextRowLabel returns the first label in sequence not used by rows.
func NextRowLabel(rows []Row) string {
	used := make(map[string]bool, len(rows))
	for _, r := range rows {
		used[r.Label] = true
	}
	for i := 0; ; i++ {
		if l := RowLabel(i); !used[l] {
			return l
		}
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
