// Package chartkit turns editable tabular data into line-chart series.
package chartkit

// CreateNewValueKey asks AddValueKey to synthesise a fresh y<N> column.
const CreateNewValueKey = "create-new"

// PreferredCategoryColumn is picked as the category axis on import when present.
const PreferredCategoryColumn = "date"

// DefaultMaxValueKeys caps how many series an import selects.
const DefaultMaxValueKeys = 5

// ImportOptions configures how an imported dataset is bound to chart axes.
type ImportOptions struct {
	// MaxValueKeys caps the number of value series selected. Zero means DefaultMaxValueKeys.
	MaxValueKeys int
	// CategoryKey forces the category column. Empty means auto-detect.
	CategoryKey string
	// PreferDateColumn picks a column named "date" as category when present.
	// If nil, defaults to true.
	PreferDateColumn *bool
	// RequireNumeric rejects datasets without a numeric value column.
	// If nil, defaults to true.
	RequireNumeric *bool
	// Sheet selects the worksheet for xlsx input. Empty means the first sheet.
	Sheet string
	// Range restricts xlsx input to an A1-style range. Empty means auto-detect.
	Range string
}

// DefaultImportOptions returns default import options.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		MaxValueKeys: DefaultMaxValueKeys,
	}
}

// ShouldPreferDateColumn returns whether a "date" column wins the category axis.
func (o ImportOptions) ShouldPreferDateColumn() bool {
	if o.PreferDateColumn != nil {
		return *o.PreferDateColumn
	}
	return true
}

// ShouldRequireNumeric returns whether imports need at least one numeric series.
func (o ImportOptions) ShouldRequireNumeric() bool {
	if o.RequireNumeric != nil {
		return *o.RequireNumeric
	}
	return true
}

func (o ImportOptions) maxValueKeys() int {
	if o.MaxValueKeys <= 0 {
		return DefaultMaxValueKeys
	}
	return o.MaxValueKeys
}
