package geometry

import (
	"math"
	"testing"
)

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{24, 0},
		{25, 50},
		{26, 50},
		{74, 50},
		{76, 100},
		{-24, 0},
		{-26, -50},
		{2999, 3000},
	}
	for _, tt := range tests {
		if got := SnapToGrid(tt.in); got != tt.want {
			t.Errorf("SnapToGrid(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSnapToGridIdempotent(t *testing.T) {
	for v := -500.0; v <= 3500; v += 7.3 {
		once := SnapToGrid(v)
		if twice := SnapToGrid(once); twice != once {
			t.Fatalf("SnapToGrid not idempotent at %v: %v then %v", v, once, twice)
		}
		if math.Mod(once, GridSize) != 0 {
			t.Fatalf("SnapToGrid(%v) = %v is not a grid multiple", v, once)
		}
	}
}

func TestConstrainToBounds(t *testing.T) {
	tests := []struct {
		name         string
		x, y, w, h   float64
		wantX, wantY float64
	}{
		{"inside", 100, 200, 100, 80, 100, 200},
		{"negative", -50, -10, 100, 80, 0, 0},
		{"past right and bottom", 2950, 1990, 100, 80, 2900, 1920},
		{"exactly at max", 2900, 1920, 100, 80, 2900, 1920},
		{"wider than canvas", 500, 10, 4000, 80, 0, 10},
		{"nan", math.NaN(), 10, 100, 80, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ConstrainToBounds(tt.x, tt.y, tt.w, tt.h)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ConstrainToBounds = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestConstrainToBoundsAlwaysInRange(t *testing.T) {
	sizes := [][2]float64{{100, 80}, {300, 200}, {120, 120}, {2999, 1999}}
	for _, s := range sizes {
		for x := -5000.0; x <= 8000; x += 333 {
			for y := -5000.0; y <= 8000; y += 417 {
				cx, cy := ConstrainToBounds(x, y, s[0], s[1])
				if cx < 0 || cx > CanvasWidth-s[0] || cy < 0 || cy > CanvasHeight-s[1] {
					t.Fatalf("ConstrainToBounds(%v, %v, %v, %v) = (%v, %v) out of range", x, y, s[0], s[1], cx, cy)
				}
			}
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 100, Y: 100, Width: 100, Height: 100}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"contained", Rect{X: 0, Y: 0, Width: 500, Height: 500}, true},
		{"partial", Rect{X: 150, Y: 150, Width: 10, Height: 10}, true},
		{"disjoint", Rect{X: 1000, Y: 1000, Width: 10, Height: 10}, false},
		{"touching edge", Rect{X: 200, Y: 100, Width: 50, Height: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFromPointsNormalizes(t *testing.T) {
	r := RectFromPoints(Pt(500, 400), Pt(100, 50))
	want := Rect{X: 100, Y: 50, Width: 400, Height: 350}
	if r != want {
		t.Errorf("RectFromPoints = %+v, want %+v", r, want)
	}
}

func TestViewTransformRoundTrip(t *testing.T) {
	transforms := []ViewTransform{
		Identity(),
		NewViewTransform(0.5, 40, -20),
		NewViewTransform(2.25, -300, 120),
		NewCellTransform(0.04, 0.02, 1, 2),
	}
	points := []Point{{0, 0}, {150, 75}, {2999, 1999}, {-10, 42}}
	for _, vt := range transforms {
		for _, p := range points {
			back := vt.ScreenToModel(vt.ModelToScreen(p))
			if back.Distance(p) > 1e-9 {
				t.Errorf("%+v: round trip %v -> %v", vt, p, back)
			}
		}
	}
}

func TestScreenDeltaToModelIgnoresPan(t *testing.T) {
	vt := NewViewTransform(0.5, 1000, 1000)
	d := vt.ScreenDeltaToModel(Pt(50, -25))
	if d.Distance(Pt(100, -50)) > 1e-9 {
		t.Errorf("ScreenDeltaToModel = %v, want (100, -50)", d)
	}
}

func TestSingularTransformFallsBackToIdentity(t *testing.T) {
	vt := ViewTransform{}
	p := Pt(12, 34)
	if got := vt.ScreenToModel(p); got != p {
		t.Errorf("ScreenToModel on singular transform = %v, want %v", got, p)
	}
	if got := vt.ScreenDeltaToModel(p); got != p {
		t.Errorf("ScreenDeltaToModel on singular transform = %v, want %v", got, p)
	}
}

func TestPointRotate(t *testing.T) {
	got := Pt(10, 0).Rotate(Pt(0, 0), 90)
	if got.Distance(Pt(0, 10)) > 1e-9 {
		t.Errorf("Rotate 90 = %v, want (0, 10)", got)
	}
}

func TestRectRotated(t *testing.T) {
	r := Rect{X: 400, Y: 400, Width: 200, Height: 100}
	d := 50 * math.Sqrt2
	tests := []struct {
		name string
		deg  float64
		want Rect
	}{
		{"none", 0, r},
		{"full turn", 360, r},
		{"quarter", 90, Rect{X: 450, Y: 350, Width: 100, Height: 200}},
		{"half", 180, r},
		{"eighth", 45, Rect{X: 500 - 1.5*d, Y: 450 - 1.5*d, Width: 3 * d, Height: 3 * d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Rotated(tt.deg)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 ||
				math.Abs(got.Width-tt.want.Width) > 1e-9 || math.Abs(got.Height-tt.want.Height) > 1e-9 {
				t.Errorf("Rotated(%v) = %+v, want %+v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestHandleRect(t *testing.T) {
	r := Rect{X: 100, Y: 200, Width: 300, Height: 150}
	tests := []struct {
		corner Corner
		want   Point
	}{
		{CornerNW, Pt(100, 200)},
		{CornerNE, Pt(400, 200)},
		{CornerSW, Pt(100, 350)},
		{CornerSE, Pt(400, 350)},
	}
	for _, tt := range tests {
		t.Run(string(tt.corner), func(t *testing.T) {
			h := HandleRect(r, tt.corner)
			if h.Width != HandleSize || h.Height != HandleSize {
				t.Errorf("size = %vx%v, want %v", h.Width, h.Height, HandleSize)
			}
			if h.Center() != tt.want {
				t.Errorf("center = %v, want %v", h.Center(), tt.want)
			}
		})
	}
}
