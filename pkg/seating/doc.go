// Package seating computes seat coordinates for tables and rows.
//
// # Determinism
//
// Every function in this package is pure: the same shape, size, capacity and
// stored seat positions always yield the same coordinates. Results are
// expressed in the element's local frame, relative to its unrotated top-left
// corner, so dragging or rotating a table never changes its seat layout.
// Use [Place] to convert local positions into model space.
//
// # Table Fallbacks
//
// Seat i uses its stored [chart.SeatPosition] when present; otherwise the
// shape fallback applies:
//
//   - ROUND, SQUARE, CUSTOM: seats evenly spaced on a circle starting at the
//     top (−90°) and running clockwise, [SeatOffset] outside the edge
//   - RECTANGULAR: seats 0 and 1 at the left and right ends, the remaining
//     seats split between the top (ceil) and bottom (floor) edges
//
// [TableSeats] always returns exactly capacity positions. Special areas
// (capacity 0) have none.
package seating
