package chartkit

import (
	"errors"
	"fmt"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/parser"
)

// ErrStructuralInvariant indicates an edit would leave the dataset without rows or columns.
var ErrStructuralInvariant = errors.New("structural invariant violated")

// ErrLastColumn indicates an attempt to delete the only column.
var ErrLastColumn = fmt.Errorf("%w: cannot delete the only column", ErrStructuralInvariant)

// ErrLastRow indicates an attempt to delete the only row.
var ErrLastRow = fmt.Errorf("%w: cannot delete the only row", ErrStructuralInvariant)

// ErrDuplicateName indicates a column name is already in use.
var ErrDuplicateName = errors.New("column name already exists")

// ErrUnknownColumn indicates the named column is not in the dataset.
var ErrUnknownColumn = errors.New("unknown column")

// ErrRowOutOfRange indicates a row index outside the dataset.
var ErrRowOutOfRange = errors.New("row index out of range")

// ErrNoColumns indicates a row operation on a dataset without columns.
var ErrNoColumns = errors.New("dataset has no columns")

// ErrInvalidOption indicates a configuration value outside its allowed range.
var ErrInvalidOption = errors.New("invalid option")

// ErrFormula indicates a formula column could not be compiled or evaluated.
var ErrFormula = errors.New("formula error")

// ErrUnsupportedFormat indicates an input or output format chartkit cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Import errors are shared with the parser package.
var (
	ErrNoDataRows      = parser.ErrNoDataRows
	ErrNoNumericColumn = parser.ErrNoNumericColumn
	ErrInvalidHeader   = parser.ErrInvalidHeader
	ErrDuplicateHeader = parser.ErrDuplicateHeader
)

// ImportError represents a rejected import; the previous dataset is kept.
type ImportError = parser.ImportError

// EditError represents a rejected dataset edit.
type EditError struct {
	Op     string // "add_row", "delete_column", "rename_column", ...
	Column string
	Row    int // -1 when the edit is not row-specific
	Err    error
}

func (e *EditError) Error() string {
	switch {
	case e.Column != "" && e.Row >= 0:
		return fmt.Sprintf("%s %q row %d: %v", e.Op, e.Column, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("%s %q: %v", e.Op, e.Column, e.Err)
	case e.Row >= 0:
		return fmt.Sprintf("%s row %d: %v", e.Op, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EditError) Unwrap() error {
	return e.Err
}

// NewEditError creates a new EditError.
func NewEditError(op, column string, row int, err error) *EditError {
	return &EditError{
		Op:     op,
		Column: column,
		Row:    row,
		Err:    err,
	}
}

// FormulaError represents a formula column failure.
type FormulaError struct {
	Column     string
	Expression string
	Err        error
}

func (e *FormulaError) Error() string {
	return fmt.Sprintf("formula %q (%s): %v", e.Column, e.Expression, e.Err)
}

func (e *FormulaError) Unwrap() []error {
	return []error{ErrFormula, e.Err}
}

// NewImportError creates a new ImportError.
func NewImportError(source string, err error) *ImportError {
	return parser.NewImportError(source, err)
}
