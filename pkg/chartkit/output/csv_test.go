package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/parser"
)

func TestWriteCSV_Quoting(t *testing.T) {
	ds := models.NewDataset("name", "value")
	ds.Rows = append(ds.Rows,
		models.Row{models.Text("a,b"), models.Number(1.5)},
		models.Row{models.Text(`say "hi"`), models.Empty()},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))
	assert.Equal(t, "name,value\n\"a,b\",1.5\n\"say \"\"hi\"\"\",\n", buf.String())
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	ds := models.NewDataset("date", "revenue", "note")
	ds.Rows = append(ds.Rows,
		models.Row{models.Text("2023-01"), models.Number(45000), models.Text("line\nbreak")},
		models.Row{models.Text("2023-02"), models.Number(-0.25), models.Empty()},
		models.Row{models.Empty(), models.Empty(), models.Empty()},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))

	back, err := parser.ParseCSV(&buf)
	require.NoError(t, err)
	assert.True(t, ds.Equal(back), "round trip changed dataset: %v", back)
}

func TestWriteCSV_SingleColumnEmptyRows(t *testing.T) {
	ds := models.NewDataset("x")
	ds.Rows = append(ds.Rows,
		models.Row{models.Text("A")},
		models.Row{models.Empty()},
		models.Row{models.Number(2)},
		models.Row{models.Empty()},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))
	assert.Equal(t, "x\nA\n\"\"\n2\n\"\"\n", buf.String())

	back, err := parser.ParseCSV(&buf)
	require.NoError(t, err)
	assert.True(t, ds.Equal(back), "round trip changed dataset: %v", back)
}

func TestWriteCSV_OnlyEmptyRow(t *testing.T) {
	ds := models.NewDataset("x")
	ds.Rows = append(ds.Rows, models.Row{models.Empty()})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))

	back, err := parser.ParseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, back.Len())
	assert.True(t, back.Rows[0][0].IsEmpty())
}
