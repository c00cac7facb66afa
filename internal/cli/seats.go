package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/seating"
)

type seatsOpts struct {
	shape    string
	capacity int
	width    float64
	height   float64
	at       string
	rotation float64
	json     bool
}

// seatPosition is one seat center in canvas coordinates.
type seatPosition struct {
	Number int     `json:"number"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func (c *CLI) seatsCommand() *cobra.Command {
	opts := seatsOpts{shape: string(chart.ShapeRound), capacity: 8, at: "0,0"}

	cmd := &cobra.Command{
		Use:   "seats",
		Short: "Print seat positions for a table shape",
		Example: `  seatplan seats --shape ROUND --capacity 8
  seatplan seats --shape RECTANGULAR --capacity 10 --at 300,400 --rotation 90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := seatsTable(opts)
			if err != nil {
				return err
			}
			seats := seatPositions(t)
			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(seats)
			}
			writeSeatTable(cmd.OutOrStdout(), t, seats)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.shape, "shape", opts.shape, "table shape: ROUND, RECTANGULAR, SQUARE, CUSTOM")
	f.IntVarP(&opts.capacity, "capacity", "n", opts.capacity, "number of seats")
	f.Float64Var(&opts.width, "width", 0, "table width (default depends on shape and capacity)")
	f.Float64Var(&opts.height, "height", 0, "table height (default depends on shape and capacity)")
	f.StringVar(&opts.at, "at", opts.at, "top-left corner x,y")
	f.Float64Var(&opts.rotation, "rotation", 0, "rotation in degrees about the table center")
	f.BoolVar(&opts.json, "json", false, "print JSON instead of a table")

	return cmd
}

// seatsTable builds the table the seats are placed around.
func seatsTable(o seatsOpts) (chart.Table, error) {
	shape, err := chart.ParseShape(o.shape)
	if err != nil {
		return chart.Table{}, err
	}
	if err := errors.ValidateCapacity(o.capacity); err != nil {
		return chart.Table{}, err
	}
	at, err := parsePoint(o.at)
	if err != nil {
		return chart.Table{}, err
	}
	w, h := o.width, o.height
	if w <= 0 || h <= 0 {
		w, h = chart.DefaultSize(shape, o.capacity)
	}
	return chart.Table{
		Shape:    shape,
		X:        at.X,
		Y:        at.Y,
		Width:    w,
		Height:   h,
		Rotation: o.rotation,
		Capacity: o.capacity,
	}, nil
}

// seatPositions returns the canvas position of every seat of t.
func seatPositions(t chart.Table) []seatPosition {
	pts := seating.Place(seating.TableSeats(t), t.Bounds(), t.Rotation)
	out := make([]seatPosition, len(pts))
	for i, p := range pts {
		out[i] = seatPosition{Number: i + 1, X: round1(p.X), Y: round1(p.Y)}
	}
	return out
}

func writeSeatTable(w io.Writer, t chart.Table, seats []seatPosition) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s table, %d seats", t.Shape, t.Capacity)))
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%.0f×%.0f at (%.0f, %.0f), rotated %.0f°",
		t.Width, t.Height, t.X, t.Y, t.Rotation)))

	rows := make([][]string, len(seats))
	for i, s := range seats {
		rows[i] = []string{fmt.Sprint(s.Number), fmt.Sprintf("%.1f", s.X), fmt.Sprintf("%.1f", s.Y)}
	}
	fmt.Fprintln(w, styledTable([]string{"Seat", "X", "Y"}, rows).Render())
}

// styledTable is the bordered table used by every listing command.
func styledTable(headers []string, rows [][]string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})
}

// round1 rounds to one decimal place for display.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
