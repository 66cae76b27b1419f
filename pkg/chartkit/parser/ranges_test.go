package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		want      models.CellRange
	}{
		{"A1:D10", "", models.CellRange{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"$B$2:$C$5", "", models.CellRange{R1: 2, C1: 2, R2: 5, C2: 3}},
		{"'My Sheet'!A1:B3", "My Sheet", models.CellRange{R1: 1, C1: 1, R2: 3, C2: 2}},
		{"Data!D10:A1", "Data", models.CellRange{R1: 1, C1: 1, R2: 10, C2: 4}},
	}

	for _, tt := range tests {
		sheet, got, err := ParseRange(tt.ref)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.ref, err)
			continue
		}
		if sheet != tt.wantSheet {
			t.Errorf("ParseRange(%q) sheet = %q, expected %q", tt.ref, sheet, tt.wantSheet)
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %v, expected %v", tt.ref, got, tt.want)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, ref := range []string{"", "A1", "A1:B2:C3", "1A:B2", "A1:"} {
		if _, _, err := ParseRange(ref); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ParseRange(%q) expected ErrInvalidRange, got %v", ref, err)
		}
	}
}

func TestFormatRange(t *testing.T) {
	r := models.CellRange{R1: 2, C1: 2, R2: 13, C2: 27}
	if got := FormatRange(r); got != "B2:AA13" {
		t.Errorf("Expected 'B2:AA13', got %q", got)
	}
}
