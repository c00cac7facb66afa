package render

import "github.com/matzehuels/seatplan/pkg/geometry"

// Kind identifies the type of a primitive.
type Kind string

const (
	KindGrid    Kind = "grid"
	KindOutline Kind = "outline"
	KindSeat    Kind = "seat"
	KindLabel   Kind = "label"
	KindBadge   Kind = "badge"
	KindHandle  Kind = "handle"
	KindBand    Kind = "band"
)

// Outline is the geometric form of an element outline.
type Outline string

const (
	OutlineRect      Outline = "rect"
	OutlineRoundRect Outline = "roundrect"
	OutlineEllipse   Outline = "ellipse"
)

// Primitive is one drawable item. Only the fields relevant to Kind are set.
type Primitive struct {
	Kind      Kind   `json:"kind"`
	ElementID string `json:"elementId,omitempty"`
	SectionID string `json:"sectionId,omitempty"`

	// Rect is the unrotated box of outlines, plaques, badges, handles, the
	// band and the grid.
	Rect     geometry.Rect `json:"rect"`
	Outline  Outline       `json:"outline,omitempty"`
	Rotation float64       `json:"rotation,omitempty"`
	Dashed   bool          `json:"dashed,omitempty"`
	Selected bool          `json:"selected,omitempty"`

	// Center and Radius place seat markers.
	Center geometry.Point `json:"center"`
	Radius float64        `json:"radius,omitempty"`

	Fill   string `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`
	Text   string `json:"text,omitempty"`

	Seat   *SeatTag        `json:"seat,omitempty"`
	Corner geometry.Corner `json:"corner,omitempty"`
}

// SeatTag carries the data attributes of a seat marker.
type SeatTag struct {
	ID     string `json:"id,omitempty"`
	Number int    `json:"number"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Scene is an ordered list of primitives over a canvas.
type Scene struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Items  []Primitive `json:"items"`
}

// Count returns how many primitives of kind k the scene holds.
func (s Scene) Count(k Kind) int {
	n := 0
	for _, p := range s.Items {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// View is the interaction state that affects drawing.
type View struct {
	Selected []string       // selected element ids
	Band     *geometry.Rect // active rubber-band rectangle, model space
}

func (v View) isSelected(id string) bool {
	for _, s := range v.Selected {
		if s == id {
			return true
		}
	}
	return false
}

// Flags toggles optional primitives.
type Flags struct {
	SeatNumbers bool `toml:"seat_numbers" json:"seatNumbers"`
	Labels      bool `toml:"labels" json:"labels"`
	Handles     bool `toml:"handles" json:"handles"`
	Grid        bool `toml:"grid" json:"grid"`
}

// DefaultFlags enables labels and handles.
func DefaultFlags() Flags {
	return Flags{Labels: true, Handles: true}
}
