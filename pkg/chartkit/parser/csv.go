package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

const csvSource = "csv"

// ParseCSV reads a header row followed by records into a dataset.
// Empty lines are skipped, short records are padded with empty cells and
// values are typed with models.InferCell.
func ParseCSV(r io.Reader) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, NewImportError(csvSource, fmt.Errorf("read csv: %w", err))
	}
	return FromRecords(csvSource, records)
}

// FromRecords builds a dataset from string records whose first element is the header.
func FromRecords(source string, records [][]string) (*models.Dataset, error) {
	if len(records) == 0 {
		return nil, NewImportError(source, ErrNoDataRows)
	}
	header, err := parseHeader(records[0])
	if err != nil {
		return nil, NewImportError(source, err)
	}

	ds := models.NewDataset(header...)
	for _, rec := range records[1:] {
		row := make(models.Row, len(header))
		for i := range header {
			if i < len(rec) {
				row[i] = models.InferCell(rec[i])
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	if ds.Len() == 0 {
		return nil, NewImportError(source, ErrNoDataRows)
	}
	return ds, nil
}

func parseHeader(raw []string) ([]string, error) {
	header := make([]string, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, name := range raw {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidHeader, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHeader, name)
		}
		seen[name] = true
		header[i] = name
	}
	if len(header) == 0 {
		return nil, ErrInvalidHeader
	}
	return header, nil
}
