package interact

import (
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/geometry"
)

// ErrBusy is returned when a gesture or drop starts while another gesture
// is active.
var ErrBusy = errors.New(errors.ErrCodeBusy, "an interaction is already in progress")

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModMeta
	ModAlt
)

// selects reports whether m enables rubber-band selection.
func (m Modifier) selects() bool { return m&(ModShift|ModCtrl|ModMeta) != 0 }

// PointerEvent is a pointer position in screen coordinates with the
// modifier keys held at the time.
type PointerEvent struct {
	Screen geometry.Point
	Mods   Modifier
}

// TargetKind classifies what lies under a point.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetElement
	TargetHandle
)

// Target is the result of a hit test.
type Target struct {
	Kind    TargetKind
	Element chart.Element   // set for TargetElement and TargetHandle
	Corner  geometry.Corner // set for TargetHandle
}

// Callbacks receive the change requests an editor emits. Nil callbacks are
// skipped.
type Callbacks struct {
	OnSectionUpdate func(s chart.Section)
	OnSectionDelete func(sectionID string)
	OnTableUpdate   func(sectionID string, t chart.Table)
	OnRowUpdate     func(sectionID string, r chart.Row)
	OnSelect        func(id string)
	OnMultiSelect   func(ids []string)
	OnInsert        func(req InsertRequest)
}

// InsertRequest asks the host to store the section that results from a
// palette drop. Section holds every element of the section including the
// new one; Created reports that the section did not exist before.
type InsertRequest struct {
	Section   chart.Section
	Created   bool
	ElementID string
	Kind      chart.ElementKind
}
