package api

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/seatplan/pkg/buildinfo"
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/interact"
	"github.com/matzehuels/seatplan/pkg/palette"
	"github.com/matzehuels/seatplan/pkg/pipeline"
	"github.com/matzehuels/seatplan/pkg/seating"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.palette})
}

type seatsRequest struct {
	Shape    chart.Shape `json:"shape"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Capacity int         `json:"capacity"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Rotation float64     `json:"rotation"`
}

type seatPoint struct {
	Number int     `json:"number"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type seatsResponse struct {
	Shape  chart.Shape   `json:"shape"`
	Bounds geometry.Rect `json:"bounds"`
	Seats  []seatPoint   `json:"seats"`
}

func (s *Server) handleSeats(w http.ResponseWriter, r *http.Request) {
	var req seatsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	shape, err := chart.ParseShape(string(req.Shape))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateCapacity(req.Capacity); err != nil {
		writeError(w, err)
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		req.Width, req.Height = chart.DefaultSize(shape, req.Capacity)
	}

	t := chart.Table{Shape: shape, X: req.X, Y: req.Y, Width: req.Width, Height: req.Height, Rotation: req.Rotation, Capacity: req.Capacity}
	pts := seating.Place(seating.TableSeats(t), t.Bounds(), t.Rotation)
	resp := seatsResponse{Shape: shape, Bounds: t.Bounds(), Seats: make([]seatPoint, len(pts))}
	for i, p := range pts {
		resp.Seats[i] = seatPoint{Number: i + 1, X: round2(p.X), Y: round2(p.Y)}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, badRequest(err, "read body"))
		return
	}
	opts, err := s.renderOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	c, _, err := s.runner.DecodeWithCacheInfo(ctx, data, opts.Refresh)
	if err != nil {
		writeError(w, err)
		return
	}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(ctx, c, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// renderOptions reads query parameters over the server defaults. Exactly
// one format is rendered per request.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := s.defaults
	opts.Formats = []string{pipeline.FormatSVG}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{strings.ToLower(f)}
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return opts, err
	}
	if sel := q.Get("selected"); sel != "" {
		opts.Selected = strings.Split(sel, ",")
	}
	if bg := q.Get("background"); bg != "" {
		opts.Background = bg
	}

	bools := map[string]*bool{
		"seat_numbers": &opts.Flags.SeatNumbers,
		"labels":       &opts.Flags.Labels,
		"handles":      &opts.Flags.Handles,
		"grid":         &opts.Flags.Grid,
		"interaction":  &opts.Interaction,
		"refresh":      &opts.Refresh,
	}
	for name, dst := range bools {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "%s: not a boolean: %q", name, v)
			}
			*dst = b
		}
	}
	ints := map[string]*int{"cols": &opts.Cols, "rows": &opts.Rows}
	for name, dst := range ints {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 1000 {
				return opts, errors.New(errors.ErrCodeInvalidInput, "%s: want 1..1000, got %q", name, v)
			}
			*dst = n
		}
	}
	return opts, nil
}

type dropRequest struct {
	Chart    chart.Chart   `json:"chart"`
	ItemName string        `json:"itemName,omitempty"`
	Item     *palette.Item `json:"item,omitempty"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
}

type dropResponse struct {
	ElementID string        `json:"elementId"`
	Kind      string        `json:"kind"`
	Created   bool          `json:"created"`
	Section   chart.Section `json:"section"`
	Chart     chart.Chart   `json:"chart"`
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Chart.Validate(); err != nil {
		writeError(w, err)
		return
	}

	var item palette.Item
	switch {
	case req.Item != nil:
		item = *req.Item
	case req.ItemName != "":
		found, ok := palette.Find(s.palette, req.ItemName)
		if !ok {
			writeError(w, errors.New(errors.ErrCodeNotFound, "palette item %q", req.ItemName))
			return
		}
		item = found
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "item or itemName is required"))
		return
	}
	if err := item.Validate(); err != nil {
		writeError(w, err)
		return
	}

	ins := interact.Insert(req.Chart, item, geometry.Pt(req.X, req.Y))
	writeJSON(w, http.StatusOK, dropResponse{
		ElementID: ins.ElementID,
		Kind:      ins.Kind.String(),
		Created:   ins.Created,
		Section:   ins.Section,
		Chart:     req.Chart.WithSection(ins.Section),
	})
}

type selectRequest struct {
	Chart chart.Chart   `json:"chart"`
	Rect  geometry.Rect `json:"rect"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Chart.Validate(); err != nil {
		writeError(w, err)
		return
	}

	ed := interact.New(interact.Callbacks{}, interact.WithLogger(s.logger))
	ed.SetSnapshot(req.Chart)
	ids := ed.SelectRect(geometry.RectFromPoints(req.Rect.Min(), req.Rect.Max()))
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"selected": ids})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return badRequest(err, "decode request body")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
