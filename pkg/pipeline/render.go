package pipeline

import (
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/render"
	"github.com/matzehuels/seatplan/pkg/render/sink"
)

// Render draws c once and writes the scene in every requested format.
func Render(c chart.Chart, opts Options) (map[string][]byte, error) {
	scene := render.Render(c, render.View{Selected: opts.Selected}, opts.Flags)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(scene, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(scene render.Scene, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(scene, svgOptions(opts)...), nil
	case FormatJSON:
		data, err := sink.RenderJSON(scene)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
		}
		return data, nil
	case FormatText:
		return []byte(sink.RenderText(scene, opts.Cols, opts.Rows)), nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.Background != "" {
		out = append(out, sink.WithBackground(opts.Background))
	}
	if opts.Interaction {
		out = append(out, sink.WithInteraction())
	}
	return out
}
