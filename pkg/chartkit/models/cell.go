// Package models defines data structures for chart datasets and their configuration.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CellKind identifies which variant of Cell is populated.
type CellKind int

const (
	// KindEmpty marks a cell with no value.
	KindEmpty CellKind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindText marks a text cell.
	KindText
)

// Cell is a single dataset value: empty, a number or a piece of text.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{kind: KindNumber, num: v} }

// Text returns a text cell. An empty string yields an empty cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{kind: KindText, text: s}
}

// Kind returns the variant held by the cell.
func (c Cell) Kind() CellKind { return c.kind }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.kind == KindNumber }

// Float returns the numeric value and whether the cell is numeric.
func (c Cell) Float() (float64, bool) {
	return c.num, c.kind == KindNumber
}

// String renders the cell the way it is shown in the data grid and written to CSV.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return FormatFloat(c.num)
	case KindText:
		return c.text
	default:
		return ""
	}
}

// MarshalJSON encodes numbers as JSON numbers, text as strings and empty cells as "".
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.kind == KindNumber && !math.IsNaN(c.num) && !math.IsInf(c.num, 0) {
		return json.Marshal(c.num)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON number, string or null into a cell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Empty()
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*c = Number(t)
	case string:
		*c = Text(t)
	case bool:
		*c = Text(strconv.FormatBool(t))
	default:
		*c = Empty()
	}
	return nil
}

// FormatFloat formats v with the shortest representation that round-trips,
// matching how numbers are displayed in the grid.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return trimExponent(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent drops the zero padding strconv puts on one-digit exponents,
// turning "1e-07" into "1e-7".
func trimExponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) != 3 || exp[1] != '0' {
		return s
	}
	return mant + "e" + exp[:1] + exp[2:]
}

// ParseCell applies the cell-edit coercion rule: when a numeric prefix of raw
// parses (as parseFloat would) and raw is not blank, the cell is that number;
// otherwise it is the trimmed text. Blank input yields an empty cell.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Empty()
	}
	if n := numericPrefix(trimmed); n > 0 {
		if v, ok := parseDecimal(trimmed[:n]); ok {
			return Number(v)
		}
	}
	return Text(trimmed)
}

// InferCell applies the import typing rule: raw becomes a number only when the
// whole (trimmed) string is a decimal literal.
func InferCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Empty()
	}
	if n := numericPrefix(trimmed); n == len(trimmed) {
		if v, ok := parseDecimal(trimmed); ok {
			return Number(v)
		}
	}
	return Text(raw)
}

// numericPrefix returns the length of the longest prefix of s that is a
// decimal literal: [sign] (Infinity | digits[.digits] | .digits) [e[sign]digits].
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func parseDecimal(s string) (float64, bool) {
	switch strings.TrimLeft(s, "+-") {
	case "Infinity":
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still parse to ±Inf or 0, which is what we want.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
