package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportCSV writes a 1-D variable as two columns, coordinate then
// value, with a header row.
func ExportCSV(w io.Writer, a *LabeledArray) error {
	if a.Rank() != 1 {
		return fmt.Errorf("%w: %q has rank %d", ErrNotOneDimensional, a.Name, a.Rank())
	}

	dim := a.Dims[0]
	coords := a.Coords[dim]

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{dim, a.Name}); err != nil {
		return err
	}
	for i, v := range a.Data {
		row := []string{
			strconv.FormatFloat(coords[i], 'g', -1, 64),
			strconv.FormatFloat(v, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
