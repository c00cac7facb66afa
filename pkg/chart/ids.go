package chart

import "github.com/google/uuid"

// Id prefixes for generated elements.
const (
	PrefixSection = "section"
	PrefixTable   = "table"
	PrefixRow     = "row"
	PrefixSeat    = "seat"
)

// NewID returns a globally unique id of the form "<prefix>-<uuid>".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NewSeat returns an available standard seat with a fresh id.
func NewSeat(number int) Seat {
	return Seat{
		ID:     NewID(PrefixSeat),
		Number: number,
		Type:   SeatStandard,
		Status: StatusAvailable,
	}
}

// NewSeats returns n seats numbered 1..n.
func NewSeats(n int) []Seat {
	if n <= 0 {
		return nil
	}
	seats := make([]Seat, n)
	for i := range seats {
		seats[i] = NewSeat(i + 1)
	}
	return seats
}
