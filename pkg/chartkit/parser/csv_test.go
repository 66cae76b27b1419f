package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func TestParseCSV(t *testing.T) {
	input := "\ufeffdate, revenue ,note\n2023-01,45000,ok\n2023-02,47500\n\n2023-03,abc,\n"
	ds, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	wantCols := []string{"date", "revenue", "note"}
	if strings.Join(ds.Columns, ",") != strings.Join(wantCols, ",") {
		t.Errorf("Expected columns %v, got %v", wantCols, ds.Columns)
	}
	if ds.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", ds.Len())
	}

	// ISO months stay text
	if ds.Rows[0][0].Kind() != models.KindText {
		t.Errorf("Expected text date, got %v", ds.Rows[0][0].Kind())
	}
	if v, ok := ds.Rows[0][1].Float(); !ok || v != 45000 {
		t.Errorf("Expected 45000, got %v", ds.Rows[0][1])
	}
	// short record is padded
	if !ds.Rows[1][2].IsEmpty() {
		t.Errorf("Expected padded empty cell, got %v", ds.Rows[1][2])
	}
	if ds.Rows[2][1].String() != "abc" {
		t.Errorf("Expected 'abc', got %v", ds.Rows[2][1])
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrNoDataRows},
		{"header only", "a,b\n", ErrNoDataRows},
		{"blank header", "a,,c\n1,2,3\n", ErrInvalidHeader},
		{"duplicate header", "a,b,a\n1,2,3\n", ErrDuplicateHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			var ie *ImportError
			if !errors.As(err, &ie) {
				t.Errorf("Expected *ImportError, got %T", err)
			}
		})
	}
}

func TestParseCSVKeepsRowsOfEmptyCells(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader("x,y\n,\nA,1\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", ds.Len())
	}
	if !ds.Rows[0][0].IsEmpty() || !ds.Rows[0][1].IsEmpty() {
		t.Errorf("Expected empty first row, got %v", ds.Rows[0])
	}
}
