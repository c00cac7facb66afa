package chartio

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
)

// ReadJSON decodes and validates a chart from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (chart.Chart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return chart.Chart{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "read chart")
	}
	return Decode(data)
}

// Decode parses and validates chart JSON held in memory.
func Decode(data []byte) (chart.Chart, error) {
	var c chart.Chart
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return c, errors.New(errors.ErrCodeInvalidChart, "empty chart")
	}

	if trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, &c.Sections)
		if err != nil {
			return chart.Chart{}, decodeError(err)
		}
	} else if err := json.Unmarshal(trimmed, &c); err != nil {
		return chart.Chart{}, decodeError(err)
	}

	if err := c.Validate(); err != nil {
		return chart.Chart{}, err
	}
	return c, nil
}

// ImportJSON reads the chart file at path.
func ImportJSON(path string) (chart.Chart, error) {
	if err := errors.ValidatePath(path); err != nil {
		return chart.Chart{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return chart.Chart{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart %s", path)
	}
	if err != nil {
		return chart.Chart{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// decodeError keeps coded errors raised by section decoding and wraps
// plain syntax errors.
func decodeError(err error) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInvalidChart, err, "decode chart")
}
