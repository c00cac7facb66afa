package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/chartio"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/interact"
	"github.com/matzehuels/seatplan/pkg/palette"
	"github.com/matzehuels/seatplan/pkg/render"
	"github.com/matzehuels/seatplan/pkg/render/sink"
)

// Rows reserved below the canvas for the status and help lines.
const chromeRows = 2

// Zoom limits of the terminal view.
const (
	minZoom  = 0.5
	maxZoom  = 16
	zoomStep = 1.25
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(colorWhite).Background(lipgloss.Color("236"))
	helpStyle    = lipgloss.NewStyle().Foreground(colorDim)
	confirmStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <chart.json>",
		Short: "Edit a seating chart in the terminal",
		Long: `Open a chart in a full-screen terminal editor. The file is created on the
first save when it does not exist.

Mouse:
  click         select an element
  drag          move the element (or the whole selection)
  drag corner   resize a selected special area
  drag empty    rubber-band select (shift, or press b first)
  wheel         zoom

Keys:
  esc           cancel the gesture or clear the selection
  delete        delete the selection
  ctrl+a        select all
  arrows        nudge the selection one grid step
  r             rotate selected tables
  [ ]           remove or add a seat on the selected table
  p / enter     choose a palette item / drop it at the pointer
  X             delete the selected element's section
  + - 0         zoom in, zoom out, reset the view
  ctrl+s        save
  q             quit

Key bindings for the editor actions can be changed in the [editor.bindings]
section of the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runEdit(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.config()
	if err != nil {
		return err
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return err
	}
	current, err := loadChart(path, true)
	if err != nil {
		return err
	}

	m := newEditModel(current, editOptions{
		name:     filepath.Base(path),
		palette:  cfg.Palette,
		flags:    cfg.Render.Flags(),
		bindings: bindings,
		save:     func(c chart.Chart) error { return chartio.ExportJSON(c, path) },
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("editor: %w", err)
	}

	if m.doc.dirty {
		printWarning("Quit with unsaved changes to %s", path)
		return nil
	}
	logger.Debug("editor closed", "file", path)
	return nil
}

type editOptions struct {
	name     string
	palette  []palette.Item
	flags    render.Flags
	bindings interact.Bindings
	save     func(chart.Chart) error
}

// editModel is the bubbletea model of the terminal editor. Screen space is
// the character grid; the view transform maps the canvas onto it.
type editModel struct {
	doc  *document
	opts editOptions

	width, height int
	zoom          float64
	pan           geometry.Point
	pointer       geometry.Point

	item      int
	band      bool
	confirm   string // section id awaiting delete confirmation
	quitArmed bool
	status    string
}

func newEditModel(c chart.Chart, opts editOptions) *editModel {
	if len(opts.palette) == 0 {
		opts.palette = palette.Default()
	}
	m := &editModel{opts: opts, zoom: 1}
	m.doc = newDocument(c, interact.WithBindings(opts.bindings))
	m.doc.onInsert = func(req interact.InsertRequest) {
		m.status = fmt.Sprintf("placed %s in %s", req.Kind, req.Section.Name)
	}
	return m
}

func (m *editModel) Init() tea.Cmd {
	return nil
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.updateView()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		return m, m.key(msg.String())
	}
	return m, nil
}

// canvasRows is the number of raster lines above the chrome.
func (m *editModel) canvasRows() int {
	return max(0, m.height-chromeRows)
}

// updateView fits the canvas to the terminal at zoom 1 and applies the
// current zoom and pan.
func (m *editModel) updateView() {
	if m.width == 0 || m.canvasRows() == 0 {
		return
	}
	sx := float64(m.width) / geometry.CanvasWidth * m.zoom
	sy := float64(m.canvasRows()) / geometry.CanvasHeight * m.zoom
	m.doc.ed.SetView(geometry.NewCellTransform(sx, sy, m.pan.X, m.pan.Y))
}

// zoomAt scales the view by factor keeping the model point under screen
// point p fixed.
func (m *editModel) zoomAt(factor float64, p geometry.Point) {
	zoom := min(maxZoom, max(minZoom, m.zoom*factor))
	if zoom == m.zoom {
		return
	}
	model := m.doc.ed.View().ScreenToModel(p)
	m.zoom = zoom
	m.updateView()
	after := m.doc.ed.View().ModelToScreen(model)
	m.pan = m.pan.Add(p.Sub(after))
	m.updateView()
}

func (m *editModel) resetView() {
	m.zoom = 1
	m.pan = geometry.Point{}
	m.updateView()
}

// cellCenter converts a terminal cell to the screen point at its center.
func cellCenter(x, y int) geometry.Point {
	return geometry.Pt(float64(x)+0.5, float64(y)+0.5)
}

func (m *editModel) mouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y)
	ed := m.doc.ed

	var mods interact.Modifier
	if msg.Shift || m.band {
		mods |= interact.ModShift
	}
	if msg.Ctrl {
		mods |= interact.ModCtrl
	}
	if msg.Alt {
		mods |= interact.ModAlt
	}
	ev := interact.PointerEvent{Screen: p, Mods: mods}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.Y >= m.canvasRows() {
				return
			}
			m.pointer = p
			if err := ed.PointerDown(ev); err != nil {
				m.status = err.Error()
				return
			}
			m.band = false
			m.quitArmed = false
		case tea.MouseButtonWheelUp:
			m.zoomAt(zoomStep, p)
		case tea.MouseButtonWheelDown:
			m.zoomAt(1/zoomStep, p)
		}
	case tea.MouseActionMotion:
		m.pointer = p
		ed.PointerMove(ev)
	case tea.MouseActionRelease:
		m.pointer = p
		ed.PointerUp(ev)
	}
}

func (m *editModel) key(k string) tea.Cmd {
	if m.confirm != "" {
		id := m.confirm
		m.confirm = ""
		if k == "y" {
			if err := m.doc.ed.DeleteSection(id); err != nil {
				m.status = err.Error()
			} else {
				m.status = "section deleted"
			}
		} else {
			m.status = "kept section"
		}
		return nil
	}

	switch k {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+s":
		m.save()
		return nil
	}

	armed := m.quitArmed
	m.quitArmed = false

	if m.doc.ed.HandleKey(k) {
		return nil
	}

	switch k {
	case "q":
		if m.doc.dirty && !armed {
			m.quitArmed = true
			m.status = "unsaved changes: ctrl+s to save, q again to quit"
			return nil
		}
		return tea.Quit
	case "b":
		m.band = !m.band
		if m.band {
			m.status = "next drag selects"
		} else {
			m.status = ""
		}
	case "p":
		m.item = (m.item + 1) % len(m.opts.palette)
		m.status = "palette: " + m.opts.palette[m.item].String()
	case "enter":
		if _, err := m.doc.ed.Drop(m.opts.palette[m.item], m.pointer); err != nil {
			m.status = err.Error()
		}
	case "]":
		m.changeCapacity(1)
	case "[":
		m.changeCapacity(-1)
	case "X":
		m.askDeleteSection()
	case "+", "=":
		m.zoomAt(zoomStep, m.center())
	case "-":
		m.zoomAt(1/zoomStep, m.center())
	case "0":
		m.resetView()
	case "shift+left":
		m.panBy(geometry.Pt(4, 0))
	case "shift+right":
		m.panBy(geometry.Pt(-4, 0))
	case "shift+up":
		m.panBy(geometry.Pt(0, 2))
	case "shift+down":
		m.panBy(geometry.Pt(0, -2))
	}
	return nil
}

func (m *editModel) center() geometry.Point {
	return geometry.Pt(float64(m.width)/2, float64(m.canvasRows())/2)
}

func (m *editModel) panBy(d geometry.Point) {
	m.pan = m.pan.Add(d)
	m.updateView()
}

func (m *editModel) changeCapacity(delta int) {
	t, ok := m.doc.selectedTable()
	if !ok {
		m.status = "select a table first"
		return
	}
	n := max(0, t.Capacity+delta)
	if err := m.doc.ed.SetCapacity(t.ID, n); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s: %d seats", t.Label(), n)
}

// askDeleteSection deletes empty sections at once and asks before
// deleting one that still holds elements.
func (m *editModel) askDeleteSection() {
	s, ok := m.doc.selectedSection()
	if !ok {
		m.status = "select an element of the section first"
		return
	}
	if s.Len() == 0 {
		_ = m.doc.ed.DeleteSection(s.ID)
		return
	}
	m.confirm = s.ID
	m.status = fmt.Sprintf("delete section %q with %d elements? y/n", s.Name, s.Len())
}

func (m *editModel) save() {
	if err := m.opts.save(m.doc.chart); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.doc.dirty = false
	m.status = "saved " + m.opts.name
}

func (m *editModel) View() string {
	if m.width == 0 || m.canvasRows() == 0 {
		return "loading..."
	}
	ed := m.doc.ed
	scene := render.Render(m.doc.chart, render.View{Selected: ed.Selection(), Band: ed.Band()}, m.opts.flags)
	raster := sink.Rasterize(scene, ed.View(), m.width, m.canvasRows())

	var b strings.Builder
	b.WriteString(colorize(raster))
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	if m.confirm != "" {
		b.WriteString(confirmStyle.Render(m.status))
	} else {
		b.WriteString(helpStyle.Render(truncate(m.helpText(), m.width)))
	}
	return b.String()
}

func (m *editModel) statusLine() string {
	name := m.opts.name
	if m.doc.dirty {
		name += " *"
	}
	parts := []string{
		name,
		m.doc.ed.State().Name(),
		fmt.Sprintf("%d selected", len(m.doc.ed.Selection())),
		fmt.Sprintf("%d seats", m.doc.chart.SeatCount()),
		m.opts.palette[m.item].Name,
		fmt.Sprintf("%.0f%%", m.zoom*100),
	}
	line := " " + strings.Join(parts, " · ")
	if m.status != "" && m.confirm == "" {
		line += " │ " + m.status
	}
	return statusStyle.Width(m.width).Render(truncate(line, m.width))
}

func (m *editModel) helpText() string {
	keys := func(a interact.Action) string {
		ks := m.doc.ed.Bindings().Keys(a)
		if len(ks) == 0 {
			return "-"
		}
		return strings.Join(ks, "/")
	}
	return fmt.Sprintf(" %s cancel  %s delete  %s all  %s rotate  p/enter place  ctrl+s save  q quit",
		keys(interact.ActionCancel),
		keys(interact.ActionDeleteSelection),
		keys(interact.ActionSelectAll),
		keys(interact.ActionRotate))
}

// colorize renders raster cells in their drawing colors, one style per run
// of equal color.
func colorize(r sink.Raster) string {
	var b strings.Builder
	for i, row := range r.Cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && row[j].Color == row[start].Color {
				continue
			}
			run := make([]rune, 0, j-start)
			for _, c := range row[start:j] {
				run = append(run, c.Rune)
			}
			if color := row[start].Color; color != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			start = j
		}
	}
	return b.String()
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}
