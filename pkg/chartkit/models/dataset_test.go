package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() *Dataset {
	ds := NewDataset("x", "y", "note")
	ds.Rows = append(ds.Rows,
		Row{Text("A"), Number(1), Text("first")},
		Row{Text("B"), Empty(), Empty()},
	)
	return ds
}

func TestDataset_Lookup(t *testing.T) {
	ds := sample()
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 1, ds.ColumnIndex("y"))
	assert.Equal(t, -1, ds.ColumnIndex("z"))
	assert.Equal(t, Number(1), ds.Cell(0, "y"))
	assert.True(t, ds.Cell(5, "y").IsEmpty())
	assert.True(t, ds.Cell(0, "z").IsEmpty())
	assert.Nil(t, ds.Column("z"))
	assert.Equal(t, []Cell{Text("A"), Text("B")}, ds.Column("x"))

	assert.True(t, ds.IsNumericColumn("y"))
	assert.False(t, ds.IsNumericColumn("note"))

	var nilDS *Dataset
	assert.Equal(t, 0, nilDS.Len())
	assert.False(t, nilDS.HasColumn("x"))
}

func TestDataset_CloneAndEqual(t *testing.T) {
	ds := sample()
	cp := ds.Clone()
	assert.True(t, ds.Equal(cp))

	cp.Rows[0][1] = Number(9)
	cp.Columns[2] = "memo"
	assert.Equal(t, Number(1), ds.Rows[0][1])
	assert.Equal(t, "note", ds.Columns[2])
	assert.False(t, ds.Equal(cp))

	assert.Equal(t, 0, (*Dataset)(nil).Clone().Len())
}

func TestCellRange(t *testing.T) {
	r := CellRange{R1: 2, C1: 3, R2: 5, C2: 4}
	assert.Equal(t, 4, r.Rows())
	assert.Equal(t, 2, r.Cols())
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(3, 2))
	assert.Equal(t, "R2C3:R5C4", r.String())
}

func TestAxes(t *testing.T) {
	a := Axes{CategoryKey: "x", ValueKeys: []string{"y"}}
	b := a.Clone()
	b.ValueKeys[0] = "z"
	assert.True(t, a.HasValueKey("y"))
	assert.False(t, a.HasValueKey("z"))
}

func TestStyle(t *testing.T) {
	s := DefaultStyleOptions()
	assert.Equal(t, DefaultPalette[0], s.SeriesColor(0))
	assert.Equal(t, DefaultPalette[1], s.SeriesColor(len(DefaultPalette)+1))
	assert.Equal(t, DefaultPalette[2], StyleOptions{}.SeriesColor(2))

	for _, c := range []string{"#fff", "#A0b1C2"} {
		assert.True(t, ValidColor(c), c)
	}
	for _, c := range []string{"", "fff", "#ffff", "#ggg", "red"} {
		assert.False(t, ValidColor(c), c)
	}
}

func TestPlottedKeys(t *testing.T) {
	rows := NewDataset("c", "a", "b", "a_MA")
	in := RenderInput{Rows: rows, ValueKeys: []string{"a", "b"}}
	assert.Equal(t, []string{"a", "b"}, in.PlottedKeys())

	in.Style.PlotMovingAverage = true
	assert.Equal(t, []string{"a", "b", "a_MA"}, in.PlottedKeys())
}
