package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// XLSXOptions selects the table to import from a workbook.
type XLSXOptions struct {
	// Sheet is the worksheet name. Empty means the first sheet, or the sheet
	// named in Range.
	Sheet string
	// Range is an A1 reference such as "A1:D13". Empty means the bounding
	// box of the sheet's data.
	Range string
}

// ParseXLSX imports a table from an Excel workbook. The first row of the
// selected area is the header.
func ParseXLSX(path string, opts XLSXOptions) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewImportError(path, fmt.Errorf("open workbook: %w", err))
	}
	defer f.Close()
	return ReadWorkbook(f, opts)
}

// ReadWorkbook imports a table from an open workbook.
func ReadWorkbook(f *excelize.File, opts XLSXOptions) (*models.Dataset, error) {
	sheet := opts.Sheet
	var area models.CellRange
	explicit := opts.Range != ""
	if explicit {
		rangeSheet, r, err := ParseRange(opts.Range)
		if err != nil {
			return nil, NewImportError(opts.Range, err)
		}
		if sheet == "" {
			sheet = rangeSheet
		}
		area = r
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewImportError("workbook", ErrSheetNotFound)
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, NewImportError(sheet, ErrSheetNotFound)
	}

	if !explicit {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, NewImportError(sheet, err)
		}
		r, ok := DetectTable(rows, DefaultTableParams())
		if !ok {
			return nil, NewImportError(sheet, ErrNoDataRows)
		}
		return FromRecords(areaSource(sheet, r), sliceArea(rows, r))
	}

	records, err := ExtractRecords(f, sheet, area)
	if err != nil {
		return nil, NewImportError(sheet, err)
	}
	return FromRecords(areaSource(sheet, area), records)
}

// areaSource names an imported area as "Sheet!A1:D10" in import errors.
func areaSource(sheet string, r models.CellRange) string {
	return sheet + "!" + FormatRange(r)
}
