package interact

import (
	"time"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
)

// State is the editor's interaction state. The concrete type is one of
// Idle, Dragging, Resizing or Selecting.
type State interface {
	// Name returns "idle", "drag", "resize" or "select".
	Name() string
	state()
}

// Idle is the resting state.
type Idle struct{}

// Dragging moves one element, or every selected element when the grabbed
// element belongs to a multi-selection.
type Dragging struct {
	Anchor  geometry.Point // pointer-down position, screen space
	Grabbed string         // id of the element under the pointer
	Members []DragMember
	Group   bool
	Started time.Time
	Updates int
}

// DragMember is one element of a drag with its starting position.
type DragMember struct {
	ID        string
	SectionID string
	Kind      chart.ElementKind
	Start     geometry.Rect // position and size at pointer-down
	Last      geometry.Point
}

// Resizing resizes a selected special area from one corner.
type Resizing struct {
	Anchor    geometry.Point // pointer-down position, screen space
	TableID   string
	SectionID string
	Corner    geometry.Corner
	Start     geometry.Rect
	Last      geometry.Rect
	Started   time.Time
	Updates   int
}

// Selecting tracks a rubber band in model space.
type Selecting struct {
	Start   geometry.Point
	Current geometry.Point
	Started time.Time
}

// Band returns the normalized rubber-band rectangle.
func (s Selecting) Band() geometry.Rect { return geometry.RectFromPoints(s.Start, s.Current) }

func (Idle) Name() string      { return "idle" }
func (Dragging) Name() string  { return "drag" }
func (Resizing) Name() string  { return "resize" }
func (Selecting) Name() string { return "select" }

func (Idle) state()      {}
func (Dragging) state()  {}
func (Resizing) state()  {}
func (Selecting) state() {}
