package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/render"
)

const elementInteractionCSS = `
    .element { transition: stroke-width 0.2s ease; }
    .element.highlight { stroke-width: 4; }
    .seat { transition: stroke-width 0.2s ease; }
    .seat.highlight { stroke-width: 3; }
    .plaque-text { font-family: sans-serif; pointer-events: none; }`

const elementInteractionJS = `
    function highlight(id) {
      document.querySelectorAll('.element').forEach(el => el.classList.toggle('highlight', el.dataset.element === id));
      document.querySelectorAll('.seat').forEach(s => s.classList.toggle('highlight', s.dataset.element === id));
    }
    function clearHighlight() {
      document.querySelectorAll('.element, .seat').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.element').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.dataset.element));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	grid        bool
	background  string
	interaction bool
}

// WithGrid draws the snap grid even when the scene has no grid primitive.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// WithBackground fills the canvas with color.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithInteraction embeds hover highlighting CSS and JS.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interaction = true } }

// RenderSVG writes scene as a standalone SVG document.
func RenderSVG(scene render.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		scene.Width, scene.Height, scene.Width, scene.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			scene.Width, scene.Height, escapeXML(r.background))
	}
	if r.grid || scene.Count(render.KindGrid) > 0 {
		renderGrid(&buf, scene.Width, scene.Height)
	}

	for _, p := range scene.Items {
		renderPrimitive(&buf, p)
	}

	if r.interaction {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", elementInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", elementInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <defs><pattern id="grid" width="%.0f" height="%.0f" patternUnits="userSpaceOnUse">`+
		`<path d="M %.0f 0 L 0 0 0 %.0f" fill="none" stroke="%s" stroke-width="1"/></pattern></defs>`+"\n",
		geometry.GridSize, geometry.GridSize, geometry.GridSize, geometry.GridSize, render.ColorGridLines)
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="url(#grid)"/>`+"\n", w, h)
}

func renderPrimitive(buf *bytes.Buffer, p render.Primitive) {
	switch p.Kind {
	case render.KindOutline:
		renderOutline(buf, p)
	case render.KindSeat:
		renderSeat(buf, p)
	case render.KindLabel, render.KindBadge:
		renderPlaque(buf, p)
	case render.KindHandle:
		fmt.Fprintf(buf, `  <rect class="handle" data-element="%s" data-corner="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
			escapeXML(p.ElementID), p.Corner, p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height, p.Fill, p.Stroke)
	case render.KindBand:
		fmt.Fprintf(buf, `  <rect class="band" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1" stroke-dasharray="6 4"/>`+"\n",
			p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height, p.Fill, p.Stroke)
	}
}

func renderOutline(buf *bytes.Buffer, p render.Primitive) {
	r := p.Rect
	width := 2
	if p.Selected {
		width = 3
	}
	dash := ""
	if p.Dashed {
		dash = ` stroke-dasharray="10 6"`
	}
	attrs := fmt.Sprintf(`class="element" data-element="%s" data-section="%s" fill="%s" stroke="%s" stroke-width="%d"%s%s`,
		escapeXML(p.ElementID), escapeXML(p.SectionID), p.Fill, escapeXML(p.Stroke), width, dash, rotate(p))

	switch p.Outline {
	case render.OutlineEllipse:
		c := r.Center()
		fmt.Fprintf(buf, `  <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" %s/>`+"\n", c.X, c.Y, r.Width/2, r.Height/2, attrs)
	case render.OutlineRoundRect:
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="12" %s/>`+"\n", r.X, r.Y, r.Width, r.Height, attrs)
	default:
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", r.X, r.Y, r.Width, r.Height, attrs)
	}
}

func renderSeat(buf *bytes.Buffer, p render.Primitive) {
	var tags string
	if p.Seat != nil {
		tags = fmt.Sprintf(` data-seat="%s" data-type="%s" data-status="%s"`,
			escapeXML(p.Seat.ID), escapeXML(p.Seat.Type), escapeXML(p.Seat.Status))
	}
	fmt.Fprintf(buf, `  <circle class="seat" data-element="%s"%s cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		escapeXML(p.ElementID), tags, p.Center.X, p.Center.Y, p.Radius, p.Fill, p.Stroke)
	if p.Text != "" {
		fmt.Fprintf(buf, `  <text class="plaque-text" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="#ffffff">%s</text>`+"\n",
			p.Center.X, p.Center.Y, p.Radius, escapeXML(p.Text))
	}
}

func renderPlaque(buf *bytes.Buffer, p render.Primitive) {
	r := p.Rect
	c := r.Center()
	fmt.Fprintf(buf, `  <g class="%s" data-element="%s"%s>`, p.Kind, escapeXML(p.ElementID), rotate(p))
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s"/>`, r.X, r.Y, r.Width, r.Height, p.Fill)
	fmt.Fprintf(buf, `<text class="plaque-text" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="#ffffff">%s</text>`,
		c.X, c.Y, r.Height*0.6, escapeXML(p.Text))
	buf.WriteString("</g>\n")
}

// rotate returns the transform attribute rotating p about its box center.
func rotate(p render.Primitive) string {
	if p.Rotation == 0 {
		return ""
	}
	c := p.Rect.Center()
	return fmt.Sprintf(` transform="rotate(%.1f %.1f %.1f)"`, p.Rotation, c.X, c.Y)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
