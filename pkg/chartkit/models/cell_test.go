package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		raw  string
		want Cell
	}{
		{"42", Number(42)},
		{" 42 ", Number(42)},
		{"-3.5", Number(-3.5)},
		{".5", Number(0.5)},
		{"5 apples", Number(5)},
		{"1,000", Number(1)},
		{"1e3x", Number(1000)},
		{"1e", Number(1)},
		{"-Infinity", Number(math.Inf(-1))},
		{"abc", Text("abc")},
		{"  abc ", Text("abc")},
		{"e5", Text("e5")},
		{".", Text(".")},
		{"+", Text("+")},
		{"", Empty()},
		{"   ", Empty()},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCell(tt.raw), "raw %q", tt.raw)
	}
}

func TestInferCell(t *testing.T) {
	tests := []struct {
		raw  string
		want Cell
	}{
		{"7", Number(7)},
		{" 7 ", Number(7)},
		{"1e5", Number(100000)},
		{"Infinity", Number(math.Inf(1))},
		{"2023-01", Text("2023-01")},
		{"1,000", Text("1,000")},
		{"5 apples", Text("5 apples")},
		{" x ", Text(" x ")},
		{"", Empty()},
		{" ", Empty()},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferCell(tt.raw), "raw %q", tt.raw)
	}
}

func TestCellAccessors(t *testing.T) {
	n := Number(2)
	v, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, KindNumber, n.Kind())

	_, ok = Text("2").Float()
	assert.False(t, ok)
	assert.True(t, Text("").IsEmpty())
	assert.Equal(t, "", Empty().String())
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{100, "100"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{0, "0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{-2.5e-9, "-2.5e-9"},
		{1.5e22, "1.5e+22"},
		{1e-10, "1e-10"},
		{1e300, "1e+300"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.v))
	}
}

func TestCellJSON(t *testing.T) {
	ds := NewDataset("a", "b")
	ds.Rows = append(ds.Rows,
		Row{Number(1), Text("x")},
		Row{Empty(), Number(2.5)},
		Row{Number(math.NaN()), Empty()},
	)

	data, err := json.Marshal(ds)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["a","b"],"rows":[[1,"x"],["",2.5],["NaN",""]]}`, string(data))

	var back Dataset
	require.NoError(t, json.Unmarshal([]byte(`{"columns":["a","b"],"rows":[[1,"x"],[null,true]]}`), &back))
	assert.Equal(t, Row{Number(1), Text("x")}, back.Rows[0])
	assert.Equal(t, Row{Empty(), Text("true")}, back.Rows[1])
}

func TestFormatFloat_ReadsBack(t *testing.T) {
	for _, v := range []float64{1e-7, -2.5e-9, 1.5e22, 0.1, 123456.789} {
		assert.Equal(t, Number(v), InferCell(FormatFloat(v)), "value %g", v)
	}
}
