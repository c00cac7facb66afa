package chart

import (
	"github.com/matzehuels/seatplan/pkg/geometry"
)

// Chart is an immutable snapshot of a venue layout.
type Chart struct {
	Sections []Section `json:"sections"`
}

// ElementKind distinguishes the two positionable element types.
type ElementKind int

const (
	KindTable ElementKind = iota
	KindRow
)

func (k ElementKind) String() string {
	if k == KindRow {
		return "row"
	}
	return "table"
}

// Element is a positionable table or row together with its model-space
// bounding box. Rows without an explicit position report their default
// origin.
type Element struct {
	ID        string
	SectionID string
	Kind      ElementKind
	Bounds    geometry.Rect
	Special   bool // capacity-0 table
	RowIndex  int  // index among all rows of the chart, -1 for tables
}

// Elements lists every table and row in draw order: sections in order, and
// within a section its elements in order.
func (c Chart) Elements() []Element {
	var out []Element
	rowIndex := 0
	for _, s := range c.Sections {
		for _, t := range s.Tables() {
			out = append(out, Element{
				ID:        t.ID,
				SectionID: s.ID,
				Kind:      KindTable,
				Bounds:    t.Bounds(),
				Special:   t.IsSpecialArea(),
				RowIndex:  -1,
			})
		}
		for _, r := range s.Rows() {
			out = append(out, Element{
				ID:        r.ID,
				SectionID: s.ID,
				Kind:      KindRow,
				Bounds:    r.Bounds(rowIndex),
				RowIndex:  rowIndex,
			})
			rowIndex++
		}
	}
	return out
}

// Element returns the element with the given id.
func (c Chart) Element(id string) (Element, bool) {
	for _, e := range c.Elements() {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Section returns the section with the given id.
func (c Chart) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionOf returns the section that holds the element with the given id.
func (c Chart) SectionOf(elementID string) (Section, bool) {
	for _, s := range c.Sections {
		for _, t := range s.Tables() {
			if t.ID == elementID {
				return s, true
			}
		}
		for _, r := range s.Rows() {
			if r.ID == elementID {
				return s, true
			}
		}
	}
	return Section{}, false
}

// Table returns the table with the given id and the id of its section.
func (c Chart) Table(id string) (Table, string, bool) {
	for _, s := range c.Sections {
		for _, t := range s.Tables() {
			if t.ID == id {
				return t, s.ID, true
			}
		}
	}
	return Table{}, "", false
}

// Row returns the row with the given id and the id of its section.
func (c Chart) Row(id string) (Row, string, bool) {
	for _, s := range c.Sections {
		for _, r := range s.Rows() {
			if r.ID == id {
				return r, s.ID, true
			}
		}
	}
	return Row{}, "", false
}

// FirstSection returns the first section of the given container type.
func (c Chart) FirstSection(kind ContainerType) (Section, bool) {
	for _, s := range c.Sections {
		if s.Type() == kind {
			return s, true
		}
	}
	return Section{}, false
}

// SeatCount returns the number of seats the chart offers. Tables count their
// capacity since seat layout always derives from it.
func (c Chart) SeatCount() int {
	n := 0
	for _, s := range c.Sections {
		for _, t := range s.Tables() {
			n += max(0, t.Capacity)
		}
		for _, r := range s.Rows() {
			n += len(r.Seats)
		}
	}
	return n
}

// WithSection returns a copy of c with s replacing the section of the same
// id, or appended when none exists. Hosts use it to apply section updates.
func (c Chart) WithSection(s Section) Chart {
	sections := make([]Section, 0, len(c.Sections)+1)
	replaced := false
	for _, cur := range c.Sections {
		if cur.ID == s.ID {
			sections = append(sections, s)
			replaced = true
			continue
		}
		sections = append(sections, cur)
	}
	if !replaced {
		sections = append(sections, s)
	}
	return Chart{Sections: sections}
}

// WithoutSection returns a copy of c without the section id.
func (c Chart) WithoutSection(id string) Chart {
	sections := make([]Section, 0, len(c.Sections))
	for _, s := range c.Sections {
		if s.ID != id {
			sections = append(sections, s)
		}
	}
	return Chart{Sections: sections}
}

// WithTable applies a table update inside section sectionID. Unknown
// sections leave c unchanged.
func (c Chart) WithTable(sectionID string, t Table) Chart {
	s, ok := c.Section(sectionID)
	if !ok {
		return c
	}
	return c.WithSection(s.WithTable(t))
}

// WithRow applies a row update inside section sectionID.
func (c Chart) WithRow(sectionID string, r Row) Chart {
	s, ok := c.Section(sectionID)
	if !ok {
		return c
	}
	return c.WithSection(s.WithRow(r))
}
