// Package parser reads CSV and Excel input into datasets.
package parser

import (
	"errors"
	"fmt"
)

// ErrNoDataRows indicates the input has a header but no records.
var ErrNoDataRows = errors.New("no data rows")

// ErrNoNumericColumn indicates no column besides the category holds numbers.
var ErrNoNumericColumn = errors.New("no numeric column")

// ErrInvalidHeader indicates an empty column name in the header row.
var ErrInvalidHeader = errors.New("invalid header")

// ErrDuplicateHeader indicates the header row repeats a column name.
var ErrDuplicateHeader = errors.New("duplicate column in header")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRange indicates a malformed cell range reference.
var ErrInvalidRange = errors.New("invalid cell range")

// ImportError represents a failure to turn an input source into a dataset.
type ImportError struct {
	Source string // file name, sheet name or "csv" for streams
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %v", e.Source, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(source string, err error) *ImportError {
	return &ImportError{
		Source: source,
		Err:    err,
	}
}
