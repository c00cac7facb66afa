package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/interact"
)

// selectedElement describes one element matched by a rubber band.
type selectedElement struct {
	ID      string        `json:"id"`
	Kind    string        `json:"kind"`
	Label   string        `json:"label"`
	Section string        `json:"section"`
	Bounds  geometry.Rect `json:"bounds"`
}

func (c *CLI) selectCommand() *cobra.Command {
	var rect string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "select <chart.json>",
		Short: "List the elements a rubber band would select",
		Long: `List the elements whose bounds overlap a rectangle, the way a rubber-band
drag in the editor selects them. Corners are canvas coordinates.`,
		Example: `  seatplan select venue.json --rect 0,0,500,500`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			band, err := parseRect(rect)
			if err != nil {
				return err
			}
			c, err := loadChart(args[0], false)
			if err != nil {
				return err
			}
			found := selectElements(c, band)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(found)
			}
			writeSelection(cmd.OutOrStdout(), found)
			return nil
		},
	}

	cmd.Flags().StringVar(&rect, "rect", "", "selection corners x1,y1,x2,y2")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("rect")

	return cmd
}

// selectElements runs a rubber-band selection over c in model space.
func selectElements(c chart.Chart, band geometry.Rect) []selectedElement {
	ed := interact.New(interact.Callbacks{})
	ed.SetSnapshot(c)
	ids := ed.SelectRect(band)

	out := make([]selectedElement, 0, len(ids))
	for _, id := range ids {
		el, ok := c.Element(id)
		if !ok {
			continue
		}
		sec, _ := c.Section(el.SectionID)
		out = append(out, selectedElement{
			ID:      el.ID,
			Kind:    el.Kind.String(),
			Label:   elementLabel(c, el),
			Section: sec.Name,
			Bounds:  el.Bounds,
		})
	}
	return out
}

// elementLabel returns the name a user sees for el.
func elementLabel(c chart.Chart, el chart.Element) string {
	if el.Kind == chart.KindRow {
		if r, _, ok := c.Row(el.ID); ok {
			return "Row " + r.Label
		}
		return el.ID
	}
	if t, _, ok := c.Table(el.ID); ok {
		return t.Label()
	}
	return el.ID
}

func writeSelection(w io.Writer, found []selectedElement) {
	if len(found) == 0 {
		fmt.Fprintln(w, StyleDim.Render("No elements in the rectangle"))
		return
	}
	rows := make([][]string, len(found))
	for i, e := range found {
		rows[i] = []string{
			e.Label,
			e.Kind,
			e.Section,
			fmt.Sprintf("%.0f,%.0f %.0f×%.0f", e.Bounds.X, e.Bounds.Y, e.Bounds.Width, e.Bounds.Height),
			e.ID,
		}
	}
	fmt.Fprintln(w, styledTable([]string{"Element", "Kind", "Section", "Bounds", "ID"}, rows).Render())
}
