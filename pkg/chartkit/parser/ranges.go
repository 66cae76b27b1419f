package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// ParseRange parses an A1 reference such as "B2:D10", "$A$1:$D$10" or
// "'My Sheet'!A1:C5". The sheet is empty when the reference has none.
// Corners may be given in any order.
func ParseRange(ref string) (string, models.CellRange, error) {
	var sheet string
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return "", models.CellRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", models.CellRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", models.CellRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	return sheet, models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// FormatRange renders r in A1 notation, e.g. "A1:D10".
func FormatRange(r models.CellRange) string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}
