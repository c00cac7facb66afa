package sink

import (
	"math"
	"strings"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/render"
)

// Seat glyphs by status.
var seatGlyphs = map[string]rune{
	string(chart.StatusAvailable): 'o',
	string(chart.StatusReserved):  'r',
	string(chart.StatusSold):      'x',
	string(chart.StatusSelected):  '@',
	string(chart.StatusBlocked):   '#',
}

// Cell is one character of a raster with the color it was drawn in.
type Cell struct {
	Rune  rune
	Color string
}

// Raster is a character grid, indexed Cells[row][col].
type Raster struct {
	Cols, Rows int
	Cells      [][]Cell
}

// String returns the raster as lines of text without trailing blanks.
func (r Raster) String() string {
	var sb strings.Builder
	for i, row := range r.Cells {
		line := make([]rune, len(row))
		for j, c := range row {
			line[j] = c.Rune
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		if i < len(r.Cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FitTransform returns the cell transform that fits scene into a cols×rows
// raster.
func FitTransform(scene render.Scene, cols, rows int) geometry.ViewTransform {
	if scene.Width <= 0 || scene.Height <= 0 {
		return geometry.Identity()
	}
	return geometry.NewCellTransform(float64(cols)/scene.Width, float64(rows)/scene.Height, 0, 0)
}

// RenderText draws scene scaled to cols×rows characters.
func RenderText(scene render.Scene, cols, rows int) string {
	return Rasterize(scene, FitTransform(scene, cols, rows), cols, rows).String()
}

// Rasterize draws scene through view into a cols×rows raster. Screen
// coordinates produced by view are cell coordinates.
func Rasterize(scene render.Scene, view geometry.ViewTransform, cols, rows int) Raster {
	cols, rows = max(0, cols), max(0, rows)
	r := Raster{Cols: cols, Rows: rows, Cells: make([][]Cell, rows)}
	for i := range r.Cells {
		r.Cells[i] = make([]Cell, cols)
		for j := range r.Cells[i] {
			r.Cells[i][j] = Cell{Rune: ' '}
		}
	}

	d := drawer{Raster: &r, view: view}
	for _, p := range scene.Items {
		switch p.Kind {
		case render.KindGrid:
			d.grid(p)
		case render.KindOutline:
			d.outline(p)
		case render.KindSeat:
			d.seat(p)
		case render.KindLabel, render.KindBadge:
			d.text(p.Rect.Center(), p.Text, p.Fill)
		case render.KindHandle:
			d.set(view.ModelToScreen(p.Rect.Center()), '■', p.Stroke)
		case render.KindBand:
			d.polygon(corners(p.Rect, 0), '.', p.Stroke, false)
		}
	}
	return r
}

type drawer struct {
	*Raster
	view geometry.ViewTransform
}

func (d drawer) set(p geometry.Point, ch rune, color string) {
	col, row := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if col < 0 || row < 0 || col >= d.Cols || row >= d.Rows {
		return
	}
	d.Cells[row][col] = Cell{Rune: ch, Color: color}
}

func (d drawer) grid(p render.Primitive) {
	step := d.view.ModelToScreen(geometry.Pt(geometry.GridSize, geometry.GridSize)).Sub(d.view.ModelToScreen(geometry.Point{}))
	if step.X < 2 || step.Y < 2 {
		return
	}
	for y := p.Rect.Y; y <= p.Rect.MaxY(); y += geometry.GridSize {
		for x := p.Rect.X; x <= p.Rect.MaxX(); x += geometry.GridSize {
			d.set(d.view.ModelToScreen(geometry.Pt(x, y)), '·', p.Stroke)
		}
	}
}

func (d drawer) outline(p render.Primitive) {
	if p.Outline == render.OutlineEllipse {
		d.ellipse(p)
		return
	}
	d.polygon(corners(p.Rect, p.Rotation), 0, p.Stroke, p.Dashed)
	for _, c := range corners(p.Rect, p.Rotation) {
		d.set(d.view.ModelToScreen(c), '+', p.Stroke)
	}
}

func (d drawer) ellipse(p render.Primitive) {
	c := p.Rect.Center()
	rx, ry := p.Rect.Width/2, p.Rect.Height/2
	const samples = 96
	for i := 0; i < samples; i++ {
		a := 2 * math.Pi * float64(i) / samples
		sin, cos := math.Sincos(a)
		pt := geometry.Pt(c.X+rx*cos, c.Y+ry*sin).Rotate(c, p.Rotation)
		tangent := geometry.Pt(-rx*sin, ry*cos).Rotate(geometry.Point{}, p.Rotation)
		d.set(d.view.ModelToScreen(pt), slopeRune(d.linear(tangent)), p.Stroke)
	}
}

// linear maps a model-space direction to screen space.
func (d drawer) linear(v geometry.Point) geometry.Point {
	return d.view.ModelToScreen(v).Sub(d.view.ModelToScreen(geometry.Point{}))
}

// polygon connects pts in screen space. ch == 0 picks a rune from each
// edge's slope.
func (d drawer) polygon(pts []geometry.Point, ch rune, color string, dashed bool) {
	for i := range pts {
		a := d.view.ModelToScreen(pts[i])
		b := d.view.ModelToScreen(pts[(i+1)%len(pts)])
		r := ch
		if r == 0 {
			r = slopeRune(b.Sub(a))
		}
		d.line(a, b, r, color, dashed)
	}
}

func (d drawer) line(a, b geometry.Point, ch rune, color string, dashed bool) {
	delta := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(delta.X), math.Abs(delta.Y))))
	if steps == 0 {
		d.set(a, ch, color)
		return
	}
	for i := 0; i <= steps; i++ {
		if dashed && i%3 == 2 {
			continue
		}
		d.set(a.Add(delta.Scale(float64(i)/float64(steps))), ch, color)
	}
}

func (d drawer) seat(p render.Primitive) {
	ch := '?'
	if p.Seat != nil {
		if g, ok := seatGlyphs[p.Seat.Status]; ok {
			ch = g
		}
	}
	d.set(d.view.ModelToScreen(p.Center), ch, p.Fill)
}

func (d drawer) text(center geometry.Point, s, color string) {
	if s == "" {
		return
	}
	runes := []rune(s)
	c := d.view.ModelToScreen(center)
	start := geometry.Pt(c.X-float64(len(runes))/2, c.Y)
	for i, ch := range runes {
		d.set(start.Add(geometry.Pt(float64(i), 0)), ch, color)
	}
}

// corners returns r's corners rotated by deg about its center, clockwise
// from the top-left.
func corners(r geometry.Rect, deg float64) []geometry.Point {
	c := r.Center()
	pts := []geometry.Point{
		r.Corner(geometry.CornerNW),
		r.Corner(geometry.CornerNE),
		r.Corner(geometry.CornerSE),
		r.Corner(geometry.CornerSW),
	}
	for i := range pts {
		pts[i] = pts[i].Rotate(c, deg)
	}
	return pts
}

func slopeRune(v geometry.Point) rune {
	ax, ay := math.Abs(v.X), math.Abs(v.Y)
	switch {
	case ax >= 2*ay:
		return '-'
	case ay >= 2*ax:
		return '|'
	case v.X*v.Y > 0:
		return '\\'
	default:
		return '/'
	}
}
