package models

// Row is one record of a Dataset, aligned with Dataset.Columns.
type Row []Cell

// Dataset is an ordered table of rows sharing one column schema.
//
// A Dataset is treated as an immutable snapshot: editing operations build a
// new Dataset instead of changing one in place.
type Dataset struct {
	// Columns is the ordered list of column names.
	Columns []string `json:"columns"`
	// Rows contains the records; every row has len(Columns) cells.
	Rows []Row `json:"rows"`
}

// NewDataset creates an empty dataset with the given columns.
func NewDataset(columns ...string) *Dataset {
	return &Dataset{
		Columns: append([]string(nil), columns...),
		Rows:    []Row{},
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnIndex returns the position of name in the schema, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	if d == nil {
		return -1
	}
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether name is part of the schema.
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// Cell returns the cell at row i for column name. Missing cells are empty.
func (d *Dataset) Cell(i int, name string) Cell {
	col := d.ColumnIndex(name)
	if col < 0 || i < 0 || i >= d.Len() || col >= len(d.Rows[i]) {
		return Empty()
	}
	return d.Rows[i][col]
}

// Column returns a copy of every cell in column name, in row order.
func (d *Dataset) Column(name string) []Cell {
	col := d.ColumnIndex(name)
	if col < 0 {
		return nil
	}
	out := make([]Cell, len(d.Rows))
	for i, row := range d.Rows {
		if col < len(row) {
			out[i] = row[col]
		}
	}
	return out
}

// IsNumericColumn reports whether column name holds at least one number.
func (d *Dataset) IsNumericColumn(name string) bool {
	for _, c := range d.Column(name) {
		if c.IsNumber() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return NewDataset()
	}
	out := &Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([]Row, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append(Row(nil), row...)
	}
	return out
}

// Equal reports whether two datasets have the same schema and cells.
func (d *Dataset) Equal(other *Dataset) bool {
	if d.Len() != other.Len() || len(d.Columns) != len(other.Columns) {
		return false
	}
	for i := range d.Columns {
		if d.Columns[i] != other.Columns[i] {
			return false
		}
	}
	for i := range d.Rows {
		if len(d.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range d.Rows[i] {
			if d.Rows[i][j] != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}
