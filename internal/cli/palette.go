package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seatplan/pkg/palette"
)

func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the items that can be placed on a chart",
		Long: `List the palette items. The palette comes from the [[palette]] entries of
the config file, or the built-in defaults when there are none.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			writePalette(cmd.OutOrStdout(), cfg.Palette)
			return nil
		},
	}
}

func writePalette(w io.Writer, items []palette.Item) {
	rows := make([][]string, len(items))
	for i, it := range items {
		width, height := it.Size()
		shape := string(it.Shape)
		if it.IsRow {
			shape = "-"
		}
		rows[i] = []string{
			it.Name,
			it.Kind(),
			shape,
			fmt.Sprint(it.Capacity),
			fmt.Sprintf("%.0f×%.0f", width, height),
		}
	}
	fmt.Fprintln(w, styledTable([]string{"Name", "Kind", "Shape", "Seats", "Size"}, rows).Render())
}
