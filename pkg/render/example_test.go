package render_test

import (
	"fmt"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/render"
)

func ExampleRender() {
	t := chart.Table{ID: "t1", Number: 1, Shape: chart.ShapeRound, X: 100, Y: 100, Width: 120, Height: 120, Capacity: 4}
	c := chart.Chart{Sections: []chart.Section{chart.NewTableSection("s1", "Tables", "", t)}}

	scene := render.Render(c, render.View{}, render.DefaultFlags())
	for _, p := range scene.Items {
		switch p.Kind {
		case render.KindSeat:
			fmt.Printf("%s seat %d at (%.0f, %.0f) %s\n", p.ElementID, p.Seat.Number, p.Center.X, p.Center.Y, p.Fill)
		default:
			fmt.Printf("%s %s %q\n", p.ElementID, p.Kind, p.Text)
		}
	}
	// Output:
	// t1 outline ""
	// t1 seat 1 at (160, 88) #4caf50
	// t1 seat 2 at (232, 160) #4caf50
	// t1 seat 3 at (160, 232) #4caf50
	// t1 seat 4 at (88, 160) #4caf50
	// t1 label "Table 1"
}
