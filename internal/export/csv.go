package export

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/alexiusacademia/gotank/internal/errors"
)

// WriteCapacityCSV writes the capacity table with a header row
func WriteCapacityCSV(w io.Writer, rows []CapacityRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CapacityHeaders); err != nil {
		return errors.Wrap(errors.TypeExport, "writing CSV header", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Cells()); err != nil {
			return errors.Wrap(errors.TypeExport, "writing CSV row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.TypeExport, "flushing CSV", err)
	}
	return nil
}

// CapacityCSV writes the capacity table to a CSV file
func CapacityCSV(path string, rows []CapacityRow) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.TypeExport, "creating "+path, err)
	}
	if err := WriteCapacityCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.TypeExport, "closing "+path, err)
	}
	return nil
}
