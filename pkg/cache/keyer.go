package cache

import "github.com/matzehuels/seatplan/pkg/render"

// Keyer derives cache keys. Hosts that need isolated namespaces wrap the
// default keyer in a [ScopedKeyer].
type Keyer interface {
	// ChartKey identifies a validated chart by the hash of its source bytes.
	ChartKey(sourceHash string) string

	// ArtifactKey identifies one rendered format of a chart.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string       `json:"format"`
	Flags       render.Flags `json:"flags"`
	Selected    []string     `json:"selected,omitempty"`
	Background  string       `json:"background,omitempty"`
	Interaction bool         `json:"interaction,omitempty"`
	Cols        int          `json:"cols,omitempty"`
	Rows        int          `json:"rows,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ChartKey returns "chart:<hash>".
func (DefaultKeyer) ChartKey(sourceHash string) string {
	return "chart:" + sourceHash
}

// ArtifactKey returns "artifact:<hash>" over the chart hash and options.
func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}
