package chart

import (
	"encoding/json"

	"github.com/matzehuels/seatplan/pkg/errors"
)

// Container is the element list of a section: either a RowList or a
// TableList, never both.
type Container interface {
	Type() ContainerType
	Len() int
	container()
}

// RowList holds the rows of a ROWS section in display order.
type RowList []Row

// TableList holds the tables of a TABLES section in display order.
type TableList []Table

func (RowList) Type() ContainerType   { return ContainerRows }
func (TableList) Type() ContainerType { return ContainerTables }
func (l RowList) Len() int            { return len(l) }
func (l TableList) Len() int          { return len(l) }
func (RowList) container()            {}
func (TableList) container()          {}

// Section is a named group of rows or tables.
type Section struct {
	ID        string
	Name      string
	Color     string
	Container Container
}

// NewRowSection returns a ROWS section.
func NewRowSection(id, name, color string, rows ...Row) Section {
	return Section{ID: id, Name: name, Color: color, Container: RowList(rows)}
}

// NewTableSection returns a TABLES section.
func NewTableSection(id, name, color string, tables ...Table) Section {
	return Section{ID: id, Name: name, Color: color, Container: TableList(tables)}
}

// Type returns the container type. A section without a container reports
// TABLES, matching how hosts create empty sections.
func (s Section) Type() ContainerType {
	if s.Container == nil {
		return ContainerTables
	}
	return s.Container.Type()
}

// Rows returns the section's rows, or nil for a TABLES section.
func (s Section) Rows() []Row {
	if l, ok := s.Container.(RowList); ok {
		return l
	}
	return nil
}

// Tables returns the section's tables, or nil for a ROWS section.
func (s Section) Tables() []Table {
	if l, ok := s.Container.(TableList); ok {
		return l
	}
	return nil
}

// Len returns the number of elements in the section.
func (s Section) Len() int {
	if s.Container == nil {
		return 0
	}
	return s.Container.Len()
}

// WithTable returns a copy of s with t replacing the table of the same id,
// or appended when no such table exists. ROWS sections are returned
// unchanged.
func (s Section) WithTable(t Table) Section {
	if s.Type() != ContainerTables {
		return s
	}
	tables := append([]Table(nil), s.Tables()...)
	for i := range tables {
		if tables[i].ID == t.ID {
			tables[i] = t
			s.Container = TableList(tables)
			return s
		}
	}
	s.Container = TableList(append(tables, t))
	return s
}

// WithRow returns a copy of s with r replacing the row of the same id, or
// appended. TABLES sections are returned unchanged.
func (s Section) WithRow(r Row) Section {
	if s.Type() != ContainerRows {
		return s
	}
	rows := append([]Row(nil), s.Rows()...)
	for i := range rows {
		if rows[i].ID == r.ID {
			rows[i] = r
			s.Container = RowList(rows)
			return s
		}
	}
	s.Container = RowList(append(rows, r))
	return s
}

// Without returns a copy of s with every element whose id is in ids removed.
// The second result reports how many elements were removed.
func (s Section) Without(ids map[string]bool) (Section, int) {
	removed := 0
	switch c := s.Container.(type) {
	case RowList:
		kept := make(RowList, 0, len(c))
		for _, r := range c {
			if ids[r.ID] {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		s.Container = kept
	case TableList:
		kept := make(TableList, 0, len(c))
		for _, t := range c {
			if ids[t.ID] {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		s.Container = kept
	}
	return s, removed
}

type sectionJSON struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Color         string        `json:"color,omitempty"`
	ContainerType ContainerType `json:"containerType"`
	Rows          []Row         `json:"rows,omitempty"`
	Tables        []Table       `json:"tables,omitempty"`
}

// MarshalJSON encodes the section with an explicit containerType and only
// the array that matches it.
func (s Section) MarshalJSON() ([]byte, error) {
	out := sectionJSON{ID: s.ID, Name: s.Name, Color: s.Color, ContainerType: s.Type()}
	switch c := s.Container.(type) {
	case RowList:
		out.Rows = c
	case TableList:
		out.Tables = c
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a section, rejecting dual-populated or mismatched
// containers.
func (s *Section) UnmarshalJSON(data []byte) error {
	var in sectionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.Rows) > 0 && len(in.Tables) > 0 {
		return errors.New(errors.ErrCodeInvalidChart, "section %q has both rows and tables", in.ID)
	}

	kind := in.ContainerType
	if kind == "" {
		switch {
		case len(in.Rows) > 0:
			kind = ContainerRows
		default:
			kind = ContainerTables
		}
	}

	*s = Section{ID: in.ID, Name: in.Name, Color: in.Color}
	switch kind {
	case ContainerRows:
		if len(in.Tables) > 0 {
			return errors.New(errors.ErrCodeInvalidChart, "section %q is ROWS but lists tables", in.ID)
		}
		s.Container = RowList(in.Rows)
	case ContainerTables:
		if len(in.Rows) > 0 {
			return errors.New(errors.ErrCodeInvalidChart, "section %q is TABLES but lists rows", in.ID)
		}
		s.Container = TableList(in.Tables)
	default:
		return errors.New(errors.ErrCodeInvalidChart, "section %q has unknown containerType %q", in.ID, in.ContainerType)
	}
	return nil
}
