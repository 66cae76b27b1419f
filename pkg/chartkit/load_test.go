package chartkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "sales.csv", "region,date,sales,cost\nEU,2023-01,10,4\nUS,2023-02,12,\n")

	d, err := Load(path, DefaultImportOptions())
	require.NoError(t, err)
	assert.Equal(t, "date", d.Axes().CategoryKey)
	assert.Equal(t, []string{"sales", "cost"}, d.Axes().ValueKeys)
	assert.Equal(t, models.Text("2023-01"), d.Dataset().Cell(0, "date"))
	assert.True(t, d.Dataset().Cell(1, "cost").IsEmpty())
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "C3", &[]any{"month", "sales"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "C4", &[]any{"Jan", 10}))
	require.NoError(t, f.SetSheetRow("Sheet1", "C5", &[]any{"Feb", 12.5}))
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	d, err := Load(path, DefaultImportOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"month", "sales"}, d.Dataset().Columns)
	assert.Equal(t, numbers(10, 12.5), d.Dataset().Column("sales"))

	opts := DefaultImportOptions()
	opts.Range = "C3:D4"
	d, err = Load(path, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Dataset().Len())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "data.json", "{}"), DefaultImportOptions())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), DefaultImportOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "header.csv", "a,b\n"), DefaultImportOptions())
	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "header.csv", ie.Source)
	assert.ErrorIs(t, err, ErrNoDataRows)

	_, err = Load(writeFile(t, "text.csv", "a,b\nx,y\n"), DefaultImportOptions())
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "text.csv", ie.Source)
	assert.ErrorIs(t, err, ErrNoNumericColumn)
}

func TestImportFile_KeepsStateOnError(t *testing.T) {
	d := NewDocument()
	before := d.Dataset()

	err := d.ImportFile(writeFile(t, "dup.csv", "a,a\n1,2\n"), DefaultImportOptions())
	assert.ErrorIs(t, err, ErrDuplicateHeader)
	assert.Same(t, before, d.Dataset())

	require.NoError(t, d.ImportFile(writeFile(t, "ok.csv", "k,v\np,1\n"), DefaultImportOptions()))
	assert.Equal(t, "k", d.Axes().CategoryKey)
	assert.Equal(t, []string{"v"}, d.Axes().ValueKeys)
}
