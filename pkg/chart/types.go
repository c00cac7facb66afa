package chart

import (
	"strings"

	"github.com/matzehuels/seatplan/pkg/errors"
)

// ContainerType names which element kind a section holds.
type ContainerType string

const (
	ContainerRows   ContainerType = "ROWS"
	ContainerTables ContainerType = "TABLES"
)

// Shape is the outline of a table.
type Shape string

const (
	ShapeRound       Shape = "ROUND"
	ShapeRectangular Shape = "RECTANGULAR"
	ShapeSquare      Shape = "SQUARE"
	ShapeCustom      Shape = "CUSTOM"
)

// Shapes lists every valid shape in display order.
var Shapes = []Shape{ShapeRound, ShapeRectangular, ShapeSquare, ShapeCustom}

// ParseShape accepts a shape name in any case.
func ParseShape(s string) (Shape, error) {
	shape := Shape(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range Shapes {
		if v == shape {
			return v, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidShape, "invalid shape %q (must be round, rectangular, square or custom)", s)
}

// SeatType describes what kind of seat a position is.
type SeatType string

const (
	SeatStandard   SeatType = "STANDARD"
	SeatWheelchair SeatType = "WHEELCHAIR"
	SeatVIP        SeatType = "VIP"
	SeatCompanion  SeatType = "COMPANION"
	SeatRestricted SeatType = "RESTRICTED"
)

// SeatStatus is the sales state of a seat.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "AVAILABLE"
	StatusReserved  SeatStatus = "RESERVED"
	StatusSold      SeatStatus = "SOLD"
	StatusSelected  SeatStatus = "SELECTED"
	StatusBlocked   SeatStatus = "BLOCKED"
)

// ReservationStatus is the booking state of a whole table.
type ReservationStatus string

const (
	ReservationReserved ReservationStatus = "RESERVED"
	ReservationPending  ReservationStatus = "PENDING"
)

// Reservation marks a table booked as a unit.
type Reservation struct {
	Status ReservationStatus `json:"status"`
	Type   string            `json:"type,omitempty"` // e.g. "FULL_TABLE", "CORPORATE"
}

// PositionKind selects how a SeatPosition is interpreted.
type PositionKind string

const (
	PositionAbsolute PositionKind = "absolute"
	PositionPolar    PositionKind = "polar"
	PositionSide     PositionKind = "side"
)

// Side is an edge of a table.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// SeatPosition is an explicitly stored seat location. Only the fields that
// belong to Kind are meaningful:
//
//   - absolute: X, Y in the element's local frame (relative to its unrotated
//     top-left corner)
//   - polar: Angle in degrees (0 points right, 90 points down) and Offset
//     outside the table edge
//   - side: Side and Offset along that side from its start
type SeatPosition struct {
	Kind   PositionKind `json:"kind"`
	X      float64      `json:"x,omitempty"`
	Y      float64      `json:"y,omitempty"`
	Angle  float64      `json:"angle,omitempty"`
	Offset float64      `json:"offset,omitempty"`
	Side   Side         `json:"side,omitempty"`
}

// Seat is a single sellable position on a row or around a table.
type Seat struct {
	ID       string        `json:"id"`
	Number   int           `json:"number"`
	Type     SeatType      `json:"type,omitempty"`
	Status   SeatStatus    `json:"status,omitempty"`
	Position *SeatPosition `json:"position,omitempty"`
}

// Table is a seating unit with a shape and capacity. Capacity 0 marks a
// special area.
type Table struct {
	ID          string       `json:"id"`
	Number      int          `json:"number"`
	Name        string       `json:"name,omitempty"`
	Shape       Shape        `json:"shape"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	Rotation    float64      `json:"rotation,omitempty"`
	Capacity    int          `json:"capacity"`
	Seats       []Seat       `json:"seats,omitempty"`
	Reservation *Reservation `json:"reservation,omitempty"`
}

// Row is a linear run of theatre seats.
type Row struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Seats      []Seat   `json:"seats"`
	X          *float64 `json:"x,omitempty"`
	Y          *float64 `json:"y,omitempty"`
	AisleAfter []int    `json:"aisleAfter,omitempty"`
}
