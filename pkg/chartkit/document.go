package chartkit

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/chartkit-go/internal/logging"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// Document is the state of one chart: its dataset, axis selection, series
// styles and view/format/style settings.
//
// Every edit replaces the dataset with a new snapshot, so values returned by
// Dataset and View are never modified afterwards. A Document is not safe for
// concurrent use.
type Document struct {
	data   *models.Dataset
	axes   models.Axes
	styles map[string]models.SeriesStyle
	view   models.ViewOptions
	format models.FormatConfig
	style  models.StyleOptions
}

// NewDocument creates a document holding the default x/y sample data.
func NewDocument() *Document {
	d := newEmptyDocument()
	d.data = DefaultDataset()
	d.axes = models.Axes{CategoryKey: "x"}
	d.appendValueKey("y")
	return d
}

// NewDocumentFromDataset creates a document for ds, selecting axes the same
// way an import does.
func NewDocumentFromDataset(ds *models.Dataset, opts ImportOptions) (*Document, error) {
	d := newEmptyDocument()
	if err := d.ImportDataset(ds, opts); err != nil {
		return nil, err
	}
	return d, nil
}

func newEmptyDocument() *Document {
	return &Document{
		data:   models.NewDataset(),
		styles: make(map[string]models.SeriesStyle),
		view:   models.DefaultViewOptions(),
		format: models.DefaultFormatConfig(),
		style:  models.DefaultStyleOptions(),
	}
}

// Dataset returns the current dataset snapshot.
func (d *Document) Dataset() *models.Dataset { return d.data }

// Axes returns a copy of the axis selection.
func (d *Document) Axes() models.Axes { return d.axes.Clone() }

// SeriesStyles returns a copy of the per-series styles.
func (d *Document) SeriesStyles() map[string]models.SeriesStyle {
	out := make(map[string]models.SeriesStyle, len(d.styles))
	for k, v := range d.styles {
		out[k] = v
	}
	return out
}

// ViewOptions returns the view derivation settings.
func (d *Document) ViewOptions() models.ViewOptions { return d.view }

// Format returns the number format settings.
func (d *Document) Format() models.FormatConfig { return d.format }

// Style returns the presentation settings.
func (d *Document) Style() models.StyleOptions { return d.style }

// AvailableColumns lists columns that are neither the category nor plotted.
func (d *Document) AvailableColumns() []string {
	var out []string
	for _, c := range d.data.Columns {
		if c != d.axes.CategoryKey && !d.axes.HasValueKey(c) {
			out = append(out, c)
		}
	}
	return out
}

// ImportDataset replaces the dataset wholesale and re-selects the axes.
// On error the document is left unchanged.
func (d *Document) ImportDataset(ds *models.Dataset, opts ImportOptions) error {
	if ds.Len() == 0 {
		return NewImportError("dataset", ErrNoDataRows)
	}
	if len(ds.Columns) == 0 {
		return NewImportError("dataset", ErrInvalidHeader)
	}

	category := opts.CategoryKey
	switch {
	case category != "":
		if !ds.HasColumn(category) {
			return NewImportError("dataset", fmt.Errorf("%w: %q", ErrUnknownColumn, category))
		}
	case opts.ShouldPreferDateColumn() && ds.HasColumn(PreferredCategoryColumn):
		category = PreferredCategoryColumn
	default:
		category = ds.Columns[0]
	}

	var values []string
	for _, c := range ds.Columns {
		if c == category || !ds.IsNumericColumn(c) {
			continue
		}
		if len(values) == opts.maxValueKeys() {
			break
		}
		values = append(values, c)
	}
	if len(values) == 0 && opts.ShouldRequireNumeric() {
		return NewImportError("dataset", ErrNoNumericColumn)
	}

	d.data = ds.Clone()
	d.axes = models.Axes{CategoryKey: category}
	d.styles = make(map[string]models.SeriesStyle)
	for _, v := range values {
		d.appendValueKey(v)
	}
	logging.Debugf("imported %d rows x %d columns; category=%q values=%v",
		ds.Len(), len(ds.Columns), category, values)
	return nil
}

// AddRow appends a row with every column empty.
func (d *Document) AddRow() error {
	if len(d.data.Columns) == 0 {
		return NewEditError("add_row", "", -1, ErrNoColumns)
	}
	next := d.data.Clone()
	next.Rows = append(next.Rows, make(models.Row, len(next.Columns)))
	d.data = next
	return nil
}

// AddColumn adds a column filled with empty cells and returns its name. An
// empty or already used name is replaced by the lowest free "column<N>".
func (d *Document) AddColumn(name string) (string, error) {
	if name == "" || d.data.HasColumn(name) {
		name = d.freshName("column", 1)
	}
	d.insertColumn(name)
	if d.axes.CategoryKey == "" {
		d.axes.CategoryKey = name
	}
	return name, nil
}

func (d *Document) insertColumn(name string) {
	next := d.data.Clone()
	next.Columns = append(next.Columns, name)
	if len(next.Rows) == 0 {
		next.Rows = append(next.Rows, make(models.Row, 0, 1))
	}
	for i := range next.Rows {
		next.Rows[i] = append(next.Rows[i], models.Empty())
	}
	d.data = next
}

// DeleteColumn removes a column from every row and from the axis selection.
func (d *Document) DeleteColumn(name string) error {
	idx := d.data.ColumnIndex(name)
	if idx < 0 {
		return NewEditError("delete_column", name, -1, ErrUnknownColumn)
	}
	if len(d.data.Columns) == 1 {
		return NewEditError("delete_column", name, -1, ErrLastColumn)
	}

	next := d.data.Clone()
	next.Columns = append(next.Columns[:idx], next.Columns[idx+1:]...)
	for i, row := range next.Rows {
		next.Rows[i] = append(row[:idx], row[idx+1:]...)
	}
	d.data = next

	d.dropValueKey(name)
	if d.axes.CategoryKey == name {
		d.axes.CategoryKey = next.Columns[0]
		d.dropValueKey(d.axes.CategoryKey)
	}
	return nil
}

// DeleteRow removes the row at index, keeping the order of the others.
func (d *Document) DeleteRow(index int) error {
	if index < 0 || index >= d.data.Len() {
		return NewEditError("delete_row", "", index, ErrRowOutOfRange)
	}
	if d.data.Len() == 1 {
		return NewEditError("delete_row", "", index, ErrLastRow)
	}
	next := d.data.Clone()
	next.Rows = append(next.Rows[:index], next.Rows[index+1:]...)
	d.data = next
	return nil
}

// RenameColumn renames a column everywhere it is referenced. Renaming to an
// empty name or to the same name does nothing.
func (d *Document) RenameColumn(oldName, newName string) error {
	if newName == "" || newName == oldName {
		return nil
	}
	idx := d.data.ColumnIndex(oldName)
	if idx < 0 {
		return NewEditError("rename_column", oldName, -1, ErrUnknownColumn)
	}
	if d.data.HasColumn(newName) {
		return NewEditError("rename_column", newName, -1, ErrDuplicateName)
	}

	next := d.data.Clone()
	next.Columns[idx] = newName
	d.data = next

	if d.axes.CategoryKey == oldName {
		d.axes.CategoryKey = newName
	}
	for i, k := range d.axes.ValueKeys {
		if k == oldName {
			d.axes.ValueKeys[i] = newName
		}
	}
	if st, ok := d.styles[oldName]; ok {
		delete(d.styles, oldName)
		d.styles[newName] = st
	}
	return nil
}

// SetCellValue stores raw in the given cell using the edit coercion rule.
func (d *Document) SetCellValue(row int, column, raw string) error {
	col := d.data.ColumnIndex(column)
	if col < 0 {
		return NewEditError("set_cell", column, row, ErrUnknownColumn)
	}
	if row < 0 || row >= d.data.Len() {
		return NewEditError("set_cell", column, row, ErrRowOutOfRange)
	}
	next := d.data.Clone()
	next.Rows[row][col] = models.ParseCell(raw)
	d.data = next
	return nil
}

// SetCategoryKey selects the category column, un-plotting it if needed.
func (d *Document) SetCategoryKey(key string) error {
	if !d.data.HasColumn(key) {
		return NewEditError("set_category", key, -1, ErrUnknownColumn)
	}
	d.axes.CategoryKey = key
	d.dropValueKey(key)
	return nil
}

// AddValueKey plots another column. CreateNewValueKey adds a fresh y<N>
// column. It returns the key that was appended, or "" if nothing changed.
func (d *Document) AddValueKey(key string) (string, error) {
	if key == CreateNewValueKey {
		name := d.freshName("y", len(d.axes.ValueKeys)+1)
		d.insertColumn(name)
		d.appendValueKey(name)
		return name, nil
	}
	if !d.data.HasColumn(key) {
		return "", NewEditError("add_value_key", key, -1, ErrUnknownColumn)
	}
	if key == d.axes.CategoryKey || d.axes.HasValueKey(key) {
		return "", nil
	}
	d.appendValueKey(key)
	return key, nil
}

// RemoveValueKey stops plotting key; the column stays in the dataset.
func (d *Document) RemoveValueKey(key string) bool {
	if !d.axes.HasValueKey(key) {
		return false
	}
	d.dropValueKey(key)
	return true
}

// SetSeriesStyle changes the line style of a plotted series.
func (d *Document) SetSeriesStyle(key string, st models.SeriesStyle) error {
	if !d.axes.HasValueKey(key) {
		return NewEditError("set_series_style", key, -1, ErrUnknownColumn)
	}
	if st.Thickness <= 0 || st.DotSize <= 0 {
		return NewEditError("set_series_style", key, -1,
			fmt.Errorf("%w: thickness and dot size must be positive", ErrInvalidOption))
	}
	d.styles[key] = st
	return nil
}

// SetSortOrder sets the row ordering of the view.
func (d *Document) SetSortOrder(order models.SortOrder) error {
	switch order {
	case models.SortDefault, models.SortAscending, models.SortDescending:
	case "":
		order = models.SortDefault
	default:
		return fmt.Errorf("%w: sort order %q", ErrInvalidOption, order)
	}
	d.view.SortOrder = order
	return nil
}

// SetRangePercent sets the share of rows shown, between 1 and 100.
func (d *Document) SetRangePercent(pct int) error {
	if pct < 1 || pct > 100 {
		return fmt.Errorf("%w: range percent %d not in [1,100]", ErrInvalidOption, pct)
	}
	d.view.RangePercent = pct
	return nil
}

// SetTransforms replaces the value transforms.
func (d *Document) SetTransforms(t models.Transforms) error {
	if t.MovingAverage.Enabled && t.MovingAverage.Window < 2 {
		return fmt.Errorf("%w: moving average window %d < 2", ErrInvalidOption, t.MovingAverage.Window)
	}
	if t.MovingAverage.Window == 0 {
		t.MovingAverage.Window = models.DefaultMAWindow
	}
	d.view.Transforms = t
	return nil
}

// SetFormat replaces the number format settings.
func (d *Document) SetFormat(f models.FormatConfig) error {
	if f.Precision < 0 {
		return fmt.Errorf("%w: precision %d", ErrInvalidOption, f.Precision)
	}
	if f.DecimalSeparator == "" {
		f.DecimalSeparator = models.DefaultDecimalSymbol
	}
	if len([]rune(f.DecimalSeparator)) != 1 {
		return fmt.Errorf("%w: decimal separator %q must be one character", ErrInvalidOption, f.DecimalSeparator)
	}
	d.format = f
	return nil
}

// SetStyle replaces the presentation settings.
func (d *Document) SetStyle(s models.StyleOptions) error {
	if s.Width < 0 || s.Height < 0 || s.FontSize < 0 {
		return fmt.Errorf("%w: negative size in style", ErrInvalidOption)
	}
	if s.Background == "" {
		s.Background = models.DefaultBackground
	}
	if len(s.Palette) == 0 {
		s.Palette = append([]string(nil), models.DefaultPalette...)
	}
	for _, c := range append([]string{s.Background}, s.Palette...) {
		if !models.ValidColor(c) {
			return fmt.Errorf("%w: colour %q is not #rgb or #rrggbb", ErrInvalidOption, c)
		}
	}
	d.style = s
	return nil
}

// View derives the read-only rows for rendering from the current state.
func (d *Document) View() *models.Dataset {
	return BuildView(d.data, d.axes, d.view)
}

// RenderInput bundles the view with everything a renderer needs.
func (d *Document) RenderInput() models.RenderInput {
	return models.RenderInput{
		Rows:        d.View(),
		CategoryKey: d.axes.CategoryKey,
		ValueKeys:   append([]string(nil), d.axes.ValueKeys...),
		SeriesStyle: d.SeriesStyles(),
		Format:      d.format,
		Style:       d.style,
	}
}

func (d *Document) appendValueKey(key string) {
	d.axes.ValueKeys = append(d.axes.ValueKeys, key)
	if _, ok := d.styles[key]; !ok {
		d.styles[key] = models.DefaultSeriesStyle()
	}
}

func (d *Document) dropValueKey(key string) {
	kept := d.axes.ValueKeys[:0:0]
	for _, k := range d.axes.ValueKeys {
		if k != key {
			kept = append(kept, k)
		}
	}
	d.axes.ValueKeys = kept
	delete(d.styles, key)
}

// freshName returns prefix<N> for the first N >= start not used as a column.
func (d *Document) freshName(prefix string, start int) string {
	if start < 1 {
		start = 1
	}
	for n := start; ; n++ {
		name := prefix + strconv.Itoa(n)
		if !d.data.HasColumn(name) {
			return name
		}
	}
}
