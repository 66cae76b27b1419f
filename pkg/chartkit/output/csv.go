package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

const emptyRecord = "\"\"\n"

// WriteCSV writes ds with a header row. Fields containing the delimiter,
// quotes or line breaks are quoted. A single empty field is written as ""
// so that readers do not take the row for a blank line.
func WriteCSV(w io.Writer, ds *models.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns); err != nil {
		return err
	}
	rec := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for i := range rec {
			rec[i] = ""
			if i < len(row) {
				rec[i] = row[i].String()
			}
		}
		if len(rec) == 1 && rec[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, emptyRecord); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
