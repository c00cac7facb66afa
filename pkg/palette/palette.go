// Package palette lists the elements a user can drop onto a chart.
//
// An [Item] is a template, not a chart element: dropping it creates a new
// table or row with fresh ids. [Default] returns the built-in palette;
// hosts may replace it with items read from configuration.
package palette

import (
	"fmt"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
)

// Item is one palette entry. Rows ignore Shape. A table item with capacity 0
// creates a special area such as a stage or a dance floor.
type Item struct {
	Name     string      `toml:"name" json:"name"`
	Shape    chart.Shape `toml:"shape" json:"shape,omitempty"`
	Capacity int         `toml:"capacity" json:"capacity"`
	IsRow    bool        `toml:"row" json:"isRow,omitempty"`
}

// Kind returns "row", "area" or "table".
func (it Item) Kind() string {
	switch {
	case it.IsRow:
		return "row"
	case it.Capacity <= 0:
		return "area"
	default:
		return "table"
	}
}

// Size returns the placeholder footprint a drop of it occupies.
func (it Item) Size() (w, h float64) {
	if it.IsRow {
		return chart.RowSize(it.Capacity, len(chart.DefaultAisles(it.Capacity)))
	}
	return chart.DefaultSize(it.Shape, it.Capacity)
}

// Validate checks the item's shape and capacity.
func (it Item) Validate() error {
	if it.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "palette item needs a name")
	}
	if it.IsRow && it.Capacity <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "row %q needs at least one seat", it.Name)
	}
	if err := errors.ValidateCapacity(it.Capacity); err != nil {
		return err
	}
	if !it.IsRow {
		if _, err := chart.ParseShape(string(it.Shape)); err != nil {
			return err
		}
	}
	return nil
}

func (it Item) String() string {
	if it.IsRow {
		return fmt.Sprintf("%s (row, %d seats)", it.Name, it.Capacity)
	}
	if it.Capacity <= 0 {
		return fmt.Sprintf("%s (area)", it.Name)
	}
	return fmt.Sprintf("%s (%s, %d seats)", it.Name, it.Shape, it.Capacity)
}

// Default returns the built-in palette.
func Default() []Item {
	return []Item{
		{Name: "Round table (8)", Shape: chart.ShapeRound, Capacity: 8},
		{Name: "Round table (10)", Shape: chart.ShapeRound, Capacity: 10},
		{Name: "Banquet table (6)", Shape: chart.ShapeRectangular, Capacity: 6},
		{Name: "Banquet table (8)", Shape: chart.ShapeRectangular, Capacity: 8},
		{Name: "Square table (4)", Shape: chart.ShapeSquare, Capacity: 4},
		{Name: "Row (10)", Capacity: 10, IsRow: true},
		{Name: "Row (20)", Capacity: 20, IsRow: true},
		{Name: "Stage", Shape: chart.ShapeCustom},
		{Name: "Dance floor", Shape: chart.ShapeSquare},
		{Name: "Buffet", Shape: chart.ShapeRectangular},
	}
}

// Find returns the item named name.
func Find(items []Item, name string) (Item, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}
