// Package pipeline provides the load → render pipeline shared by the CLI
// and the HTTP API.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Load: read a chart file (or bytes), decode and validate it
//  2. Render: draw the chart into a scene and write it in each requested
//     format (SVG, JSON, terminal text)
//
// Both stages are cached through [cache.Cache]. A chart is identified by the
// hash of its canonical JSON, so two files that differ only in whitespace
// share artifacts.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, "venue.json", pipeline.Options{
//	    Formats: []string{"svg", "txt"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [cache.Cache]: github.com/matzehuels/seatplan/pkg/cache.Cache
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seatplan/pkg/cache"
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/render"
)

// Default raster size for the txt format, in terminal cells.
const (
	DefaultCols = 120
	DefaultRows = 40
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
}

// Options configures a render run. It is JSON-serializable so the API can
// accept it in request bodies.
type Options struct {
	Formats     []string     `json:"formats,omitempty"`
	Flags       render.Flags `json:"flags"`
	Selected    []string     `json:"selected,omitempty"`
	Background  string       `json:"background,omitempty"`
	Interaction bool         `json:"interaction,omitempty"`
	Cols        int          `json:"cols,omitempty"`
	Rows        int          `json:"rows,omitempty"`
	Refresh     bool         `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Chart     chart.Chart
	ChartHash string
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sections   int
	Elements   int
	Seats      int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // chart came from cache, validation skipped
	RenderHit bool // every artifact came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates. An empty string yields the default format.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []string{FormatSVG}
	}
	return out
}

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Cols <= 0 {
		o.Cols = DefaultCols
	}
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks formats and the background color.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidateColor(o.Background)
}

// ArtifactKeyOpts returns cache key options for one format. Raster size
// only matters for text output.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:      format,
		Flags:       o.Flags,
		Selected:    o.Selected,
		Background:  o.Background,
		Interaction: o.Interaction,
	}
	if format == FormatText {
		k.Cols, k.Rows = o.Cols, o.Rows
	}
	return k
}
