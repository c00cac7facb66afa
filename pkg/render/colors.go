package render

import "github.com/matzehuels/seatplan/pkg/chart"

// Palette colors.
const (
	ColorAvailable = "#4caf50"
	ColorReserved  = "#ffb300"
	ColorSold      = "#e53935"
	ColorSelected  = "#1e88e5"
	ColorBlocked   = "#9e9e9e"
	ColorUnknown   = "#bdbdbd"

	ColorOutline   = "#455a64"
	ColorFill      = "#ffffff"
	ColorSpecial   = "#eceff1"
	ColorPlaque    = "#263238"
	ColorBadge     = "#ff6f00"
	ColorHandle    = "#1e88e5"
	ColorBandFill  = "rgba(30,136,229,0.12)"
	ColorGridLines = "#e0e0e0"
)

var statusColors = map[chart.SeatStatus]string{
	chart.StatusAvailable: ColorAvailable,
	chart.StatusReserved:  ColorReserved,
	chart.StatusSold:      ColorSold,
	chart.StatusSelected:  ColorSelected,
	chart.StatusBlocked:   ColorBlocked,
}

// StatusColor returns the marker color for a seat status. Empty status
// counts as available; unknown statuses get ColorUnknown.
func StatusColor(s chart.SeatStatus) string {
	if s == "" {
		return ColorAvailable
	}
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorUnknown
}
