package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/geometry"
)

// parseFloats splits "a,b,..." into exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%q: want %d comma-separated numbers", s, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%q", s)
		}
		out[i] = v
	}
	return out, nil
}

// parsePoint parses "x,y" in canvas units.
func parsePoint(s string) (geometry.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Pt(v[0], v[1]), nil
}

// parseRect parses two corners "x1,y1,x2,y2" in any order.
func parseRect(s string) (geometry.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.RectFromPoints(geometry.Pt(v[0], v[1]), geometry.Pt(v[2], v[3])), nil
}
