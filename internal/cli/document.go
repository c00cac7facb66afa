package cli

import (
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/interact"
)

// document owns the canonical chart of an editing session. It applies every
// change request the editor emits and hands the result back as the new
// snapshot.
type document struct {
	chart chart.Chart
	ed    *interact.Editor
	dirty bool

	// onInsert is told about palette drops, for status messages.
	onInsert func(interact.InsertRequest)
}

func newDocument(c chart.Chart, opts ...interact.Option) *document {
	d := &document{chart: c}
	d.ed = interact.New(d.callbacks(), opts...)
	d.ed.SetSnapshot(c)
	return d
}

func (d *document) callbacks() interact.Callbacks {
	return interact.Callbacks{
		OnSectionUpdate: func(s chart.Section) {
			d.apply(d.chart.WithSection(s))
		},
		OnSectionDelete: func(sectionID string) {
			d.apply(d.chart.WithoutSection(sectionID))
		},
		OnTableUpdate: func(sectionID string, t chart.Table) {
			d.apply(d.chart.WithTable(sectionID, t))
		},
		OnRowUpdate: func(sectionID string, r chart.Row) {
			d.apply(d.chart.WithRow(sectionID, r))
		},
		OnInsert: func(req interact.InsertRequest) {
			d.apply(d.chart.WithSection(req.Section))
			if d.onInsert != nil {
				d.onInsert(req)
			}
		},
	}
}

func (d *document) apply(c chart.Chart) {
	d.chart = c
	d.dirty = true
	d.ed.SetSnapshot(c)
}

// selectedTable returns the first selected table.
func (d *document) selectedTable() (chart.Table, bool) {
	for _, id := range d.ed.Selection() {
		if t, _, ok := d.chart.Table(id); ok {
			return t, true
		}
	}
	return chart.Table{}, false
}

// selectedSection returns the section holding the first selected element.
func (d *document) selectedSection() (chart.Section, bool) {
	sel := d.ed.Selection()
	if len(sel) == 0 {
		return chart.Section{}, false
	}
	return d.chart.SectionOf(sel[0])
}
