package chartkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/chartkit-go/internal/logging"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/parser"
)

// ReadDataset reads a dataset from a .csv or .xlsx file.
func ReadDataset(path string, opts ImportOptions) (*models.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		ds, err := parser.ParseCSV(f)
		if err != nil {
			return nil, relabel(err, filepath.Base(path))
		}
		return ds, nil
	case ".xlsx", ".xlsm":
		return parser.ParseXLSX(path, parser.XLSXOptions{Sheet: opts.Sheet, Range: opts.Range})
	default:
		return nil, fmt.Errorf("%w: %q (want .csv or .xlsx)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load creates a document from a .csv or .xlsx file.
func Load(path string, opts ImportOptions) (*Document, error) {
	ds, err := ReadDataset(path, opts)
	if err != nil {
		return nil, err
	}
	d, err := NewDocumentFromDataset(ds, opts)
	if err != nil {
		return nil, relabel(err, filepath.Base(path))
	}
	logging.Infof("loaded %s: %d rows", path, ds.Len())
	return d, nil
}

// ImportFile replaces the document's dataset with the contents of path.
// On error the previous dataset and axes are kept.
func (d *Document) ImportFile(path string, opts ImportOptions) error {
	ds, err := ReadDataset(path, opts)
	if err != nil {
		return err
	}
	if err := d.ImportDataset(ds, opts); err != nil {
		return relabel(err, filepath.Base(path))
	}
	return nil
}

// relabel names the file in an ImportError raised for an anonymous source.
func relabel(err error, source string) error {
	if ie, ok := err.(*ImportError); ok {
		return NewImportError(source, ie.Err)
	}
	return err
}
