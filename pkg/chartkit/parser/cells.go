package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// ExtractRecords reads the cells of area from a sheet as string records.
// Cell values are read raw, so numbers keep full precision and are not
// affected by the workbook's number formats. Records are padded to the
// width of the area.
func ExtractRecords(f *excelize.File, sheetName string, area models.CellRange) ([][]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return trimBlankTail(sliceArea(rows, area)), nil
}

// sliceArea cuts a rectangular 1-based area out of ragged rows.
func sliceArea(rows [][]string, area models.CellRange) [][]string {
	var records [][]string
	for rowNum := area.R1; rowNum <= area.R2; rowNum++ {
		rec := make([]string, area.Cols())
		if rowNum-1 < len(rows) {
			row := rows[rowNum-1]
			for colNum := area.C1; colNum <= area.C2; colNum++ {
				if colNum-1 < len(row) {
					rec[colNum-area.C1] = row[colNum-1]
				}
			}
		}
		records = append(records, rec)
	}
	return records
}

// trimBlankTail drops trailing records with no data, so a range that
// overshoots the table does not import empty rows.
func trimBlankTail(records [][]string) [][]string {
	for len(records) > 0 {
		last := records[len(records)-1]
		blank := true
		for _, v := range last {
			if !isBlank(v) {
				blank = false
				break
			}
		}
		if !blank {
			break
		}
		records = records[:len(records)-1]
	}
	return records
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
