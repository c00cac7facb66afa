package sink

import (
	"encoding/json"

	"github.com/matzehuels/seatplan/pkg/render"
)

type jsonOutput struct {
	Width  float64            `json:"width"`
	Height float64            `json:"height"`
	Counts map[string]int     `json:"counts"`
	Items  []render.Primitive `json:"items"`
}

// RenderJSON exports scene as a pretty-printed JSON document. Next to the
// primitives it records how many of each kind the scene holds.
func RenderJSON(scene render.Scene) ([]byte, error) {
	out := jsonOutput{
		Width:  scene.Width,
		Height: scene.Height,
		Counts: make(map[string]int),
		Items:  scene.Items,
	}
	if out.Items == nil {
		out.Items = []render.Primitive{}
	}
	for _, p := range scene.Items {
		out.Counts[string(p.Kind)]++
	}
	return json.MarshalIndent(out, "", "  ")
}
