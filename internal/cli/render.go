package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seatplan/pkg/pipeline"
)

// renderFlags holds the raw command-line flags for the render command.
// Flags the user did not set fall back to the [render] config section.
type renderFlags struct {
	output      string
	formats     string
	selected    []string
	seatNumbers bool
	labels      bool
	handles     bool
	grid        bool
	background  string
	interaction bool
	cols        int
	rows        int
	noCache     bool
	refresh     bool
}

// renderCommand creates the render command for writing chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <chart.json>",
		Short: "Render a seating chart to SVG, JSON or terminal text",
		Long: `Render a seating chart.

Formats:
  svg   vector drawing, optionally with hover interaction
  json  the drawing primitives as JSON
  txt   a character raster sized by --cols and --rows ("-o -" prints it)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.renderOptions(cmd, flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], flags.output, flags.noCache, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	f.StringVarP(&flags.formats, "format", "f", "", "output format(s): svg, json, txt (comma-separated)")
	f.StringSliceVar(&flags.selected, "selected", nil, "element ids to draw as selected")
	f.BoolVar(&flags.seatNumbers, "seat-numbers", true, "label seats with their numbers")
	f.BoolVar(&flags.labels, "labels", true, "draw table numbers and row labels")
	f.BoolVar(&flags.handles, "handles", true, "draw resize handles on selected areas")
	f.BoolVar(&flags.grid, "grid", false, "draw the snap grid")
	f.StringVar(&flags.background, "background", "", "SVG background color (#rgb or #rrggbb)")
	f.BoolVar(&flags.interaction, "interaction", false, "embed hover highlighting in SVG output")
	f.IntVar(&flags.cols, "cols", pipeline.DefaultCols, "txt output width in characters")
	f.IntVar(&flags.rows, "rows", pipeline.DefaultRows, "txt output height in lines")
	f.BoolVar(&flags.noCache, "no-cache", false, "disable the artifact cache")
	f.BoolVar(&flags.refresh, "refresh", false, "ignore cached artifacts and render again")

	return cmd
}

// renderOptions starts from the configured defaults and applies the flags
// the user set explicitly.
func (c *CLI) renderOptions(cmd *cobra.Command, flags renderFlags) (pipeline.Options, error) {
	cfg, err := c.config()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := cfg.PipelineOptions()

	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Formats = pipeline.ParseFormats(flags.formats)
	}
	if changed("seat-numbers") {
		opts.Flags.SeatNumbers = flags.seatNumbers
	}
	if changed("labels") {
		opts.Flags.Labels = flags.labels
	}
	if changed("handles") {
		opts.Flags.Handles = flags.handles
	}
	if changed("grid") {
		opts.Flags.Grid = flags.grid
	}
	if changed("background") {
		opts.Background = flags.background
	}
	if changed("interaction") {
		opts.Interaction = flags.interaction
	}
	opts.Selected = flags.selected
	opts.Cols = flags.cols
	opts.Rows = flags.rows
	opts.Refresh = flags.refresh

	if err := opts.Validate(); err != nil {
		return pipeline.Options{}, err
	}
	if flags.output == "-" && len(opts.Formats) > 1 {
		return pipeline.Options{}, fmt.Errorf("--output - needs a single format, got %s", strings.Join(opts.Formats, ","))
	}
	return opts, nil
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input, output string, noCache bool, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Debug("rendering", "input", input, "formats", opts.Formats)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger

	stop := func() {}
	if output != "-" {
		stop = startSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	}
	result, err := runner.Execute(ctx, input, opts)
	stop()
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "-" {
		_, err := stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(input, output, opts.Formats)
	for _, format := range opts.Formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
	}
	prog.done("Rendered "+filepath.Base(input), "formats", len(opts.Formats), "cached", result.CacheInfo.RenderHit)

	printSuccess("Rendered %s", filepath.Base(input))
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats.Sections, result.Stats.Elements, result.Stats.Seats, result.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps each format to its file. A single format writes to
// output as given; several formats share a base path with one extension
// each. An empty output derives the base from the input file.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + extension(f)
	}
	return paths
}

// extension returns the file suffix for format. Scene JSON gets its own
// suffix so it never overwrites the chart it was rendered from.
func extension(format string) string {
	if format == pipeline.FormatJSON {
		return ".scene.json"
	}
	return "." + format
}

// basePath strips a known format extension from output, or the extension
// of input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	if strings.HasSuffix(output, ".scene.json") {
		return strings.TrimSuffix(output, ".scene.json")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
