// Package editor is a terminal spreadsheet for editing a chart's dataset
// and settings.
package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukaji3/chartkit-go/internal/logging"
	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
)

type mode int

const (
	modeView mode = iota
	modeEditCell
	modeRenameColumn
	modeImportFile
)

const rangeStep = 10

// Options configures where the editor saves.
type Options struct {
	// DataPath receives the dataset as CSV on save.
	DataPath string
	// ConfigPath receives the chart configuration as YAML on save. Empty
	// skips writing a configuration.
	ConfigPath string
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	doc  *chartkit.Document
	opts Options
	keys Keymap

	mode  mode
	input textinput.Model

	row, col             int
	rowOffset, colOffset int
	width, height        int

	dirty       bool
	confirmQuit bool
	showHelp    bool

	noticeMsg  string
	noticeKind string
	noticeSeq  int
}

// New creates an editor for doc.
func New(doc *chartkit.Document, opts Options) *Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return &Model{
		doc:    doc,
		opts:   opts,
		keys:   Keys,
		input:  ti,
		width:  100,
		height: 30,
	}
}

// Run opens the editor full screen and blocks until the user quits.
func Run(doc *chartkit.Document, opts Options) error {
	_, err := tea.NewProgram(New(doc, opts), tea.WithAltScreen()).Run()
	return err
}

// Document returns the edited document.
func (m *Model) Document() *chartkit.Document { return m.doc }

// Dirty reports whether there are unsaved changes.
func (m *Model) Dirty() bool { return m.dirty }

func (m *Model) Init() tea.Cmd {
	logging.Debugf("editor: opened with %d rows", m.doc.Dataset().Len())
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureVisible()
	case clearNoticeMsg:
		if msg.id == m.noticeSeq {
			m.noticeMsg, m.noticeKind = "", ""
		}
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEditCell, modeRenameColumn, modeImportFile:
		return m.handleInputKey(msg)
	}
	return m.handleViewKey(msg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeView
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		current := m.mode
		m.mode = modeView
		m.input.Blur()
		switch current {
		case modeRenameColumn:
			return m, m.renameColumn(value)
		case modeImportFile:
			return m, m.importFile(value)
		}
		return m, m.setCell(value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			return m, m.startNotice("unsaved changes; press q again to quit", "warn")
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row--
	case key.Matches(msg, m.keys.Down):
		m.row++
	case key.Matches(msg, m.keys.Left):
		m.col--
	case key.Matches(msg, m.keys.Right):
		m.col++
	case key.Matches(msg, m.keys.EditCell):
		cmd = m.beginEdit()
	case key.Matches(msg, m.keys.ClearCell):
		if m.doc.Dataset().Len() > 0 {
			cmd = m.setCell("")
		}
	case key.Matches(msg, m.keys.RenameColumn):
		cmd = m.beginRename()
	case key.Matches(msg, m.keys.AddRow):
		cmd = m.addRow()
	case key.Matches(msg, m.keys.AddColumn):
		cmd = m.addColumn()
	case key.Matches(msg, m.keys.DeleteRow):
		cmd = m.deleteRow()
	case key.Matches(msg, m.keys.DeleteColumn):
		cmd = m.deleteColumn()
	case key.Matches(msg, m.keys.SetCategory):
		cmd = m.setCategory()
	case key.Matches(msg, m.keys.ToggleSeries):
		cmd = m.toggleSeries()
	case key.Matches(msg, m.keys.CycleSort):
		cmd = m.cycleSort()
	case key.Matches(msg, m.keys.Normalize):
		cmd = m.toggleTransform(func(t *models.Transforms) { t.Normalize = !t.Normalize })
	case key.Matches(msg, m.keys.Cumulative):
		cmd = m.toggleTransform(func(t *models.Transforms) { t.Cumulative = !t.Cumulative })
	case key.Matches(msg, m.keys.Percentage):
		cmd = m.toggleTransform(func(t *models.Transforms) { t.Percentage = !t.Percentage })
	case key.Matches(msg, m.keys.MovingAvg):
		cmd = m.toggleTransform(func(t *models.Transforms) {
			t.MovingAverage.Enabled = !t.MovingAverage.Enabled
			if t.MovingAverage.Window < 2 {
				t.MovingAverage.Window = models.DefaultMAWindow
			}
		})
	case key.Matches(msg, m.keys.RangeLess):
		cmd = m.adjustRange(-rangeStep)
	case key.Matches(msg, m.keys.RangeMore):
		cmd = m.adjustRange(rangeStep)
	case key.Matches(msg, m.keys.Save):
		cmd = m.save()
	case key.Matches(msg, m.keys.Import):
		cmd = m.beginImport()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	m.clampCursor()
	m.ensureVisible()
	return m, cmd
}

func (m *Model) columnName() string {
	cols := m.doc.Dataset().Columns
	if m.col < 0 || m.col >= len(cols) {
		return ""
	}
	return cols[m.col]
}

func (m *Model) beginEdit() tea.Cmd {
	ds := m.doc.Dataset()
	if ds.Len() == 0 {
		return m.startNotice("no rows; press o to add one", "warn")
	}
	m.mode = modeEditCell
	m.input.Prompt = fmt.Sprintf("%s[%d]: ", m.columnName(), m.row+1)
	m.input.SetValue(ds.Rows[m.row][m.col].String())
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) beginRename() tea.Cmd {
	m.mode = modeRenameColumn
	m.input.Prompt = "rename column: "
	m.input.SetValue(m.columnName())
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) beginImport() tea.Cmd {
	m.mode = modeImportFile
	m.input.Prompt = "import file: "
	m.input.SetValue(m.opts.DataPath)
	m.input.CursorEnd()
	return m.input.Focus()
}

// importFile replaces the dataset with a CSV or Excel file. A failed import
// leaves the document as it was.
func (m *Model) importFile(path string) tea.Cmd {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := m.doc.ImportFile(path, chartkit.DefaultImportOptions()); err != nil {
		logging.Warnf("editor: import %s: %v", path, err)
		return m.errorNotice(err)
	}
	m.dirty = true
	m.row, m.col = 0, 0
	m.rowOffset, m.colOffset = 0, 0
	return m.startNotice(fmt.Sprintf("imported %s: %d rows", path, m.doc.Dataset().Len()), "success")
}

func (m *Model) setCell(value string) tea.Cmd {
	if err := m.doc.SetCellValue(m.row, m.columnName(), value); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return nil
}

func (m *Model) renameColumn(name string) tea.Cmd {
	old := m.columnName()
	if name == old {
		return nil
	}
	if err := m.doc.RenameColumn(old, name); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return m.startNotice(fmt.Sprintf("renamed %q to %q", old, name), "success")
}

func (m *Model) addRow() tea.Cmd {
	if err := m.doc.AddRow(); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	m.row = m.doc.Dataset().Len() - 1
	return nil
}

func (m *Model) addColumn() tea.Cmd {
	name, err := m.doc.AddColumn("")
	if err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	m.col = m.doc.Dataset().ColumnIndex(name)
	return m.startNotice("added column "+name, "success")
}

func (m *Model) deleteRow() tea.Cmd {
	if m.doc.Dataset().Len() == 0 {
		return nil
	}
	if err := m.doc.DeleteRow(m.row); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return nil
}

func (m *Model) deleteColumn() tea.Cmd {
	name := m.columnName()
	if err := m.doc.DeleteColumn(name); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return m.startNotice("deleted column "+name, "success")
}

func (m *Model) setCategory() tea.Cmd {
	if err := m.doc.SetCategoryKey(m.columnName()); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return nil
}

func (m *Model) toggleSeries() tea.Cmd {
	name := m.columnName()
	if m.doc.Axes().HasValueKey(name) {
		m.doc.RemoveValueKey(name)
		m.dirty = true
		return nil
	}
	if name == m.doc.Axes().CategoryKey {
		return m.startNotice(name+" is the X axis", "warn")
	}
	if _, err := m.doc.AddValueKey(name); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return nil
}

func (m *Model) cycleSort() tea.Cmd {
	next := map[models.SortOrder]models.SortOrder{
		models.SortDefault:    models.SortAscending,
		models.SortAscending:  models.SortDescending,
		models.SortDescending: models.SortDefault,
	}[m.doc.ViewOptions().SortOrder]
	if next == "" {
		next = models.SortDefault
	}
	if err := m.doc.SetSortOrder(next); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return m.startNotice("sort: "+string(next), "info")
}

func (m *Model) toggleTransform(apply func(*models.Transforms)) tea.Cmd {
	t := m.doc.ViewOptions().Transforms
	apply(&t)
	if err := m.doc.SetTransforms(t); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return nil
}

func (m *Model) adjustRange(delta int) tea.Cmd {
	pct := m.doc.ViewOptions().RangePercent + delta
	pct = min(max(pct, rangeStep), 100)
	if err := m.doc.SetRangePercent(pct); err != nil {
		return m.errorNotice(err)
	}
	m.dirty = true
	return nil
}

func (m *Model) save() tea.Cmd {
	if m.opts.DataPath == "" {
		return m.startNotice("no output file configured", "warn")
	}
	if err := writeCSVFile(m.opts.DataPath, m.doc.Dataset()); err != nil {
		logging.Errorf("editor: save %s: %v", m.opts.DataPath, err)
		return m.errorNotice(err)
	}
	if m.opts.ConfigPath != "" {
		if err := chartkit.SaveConfig(m.opts.ConfigPath, m.doc.Config()); err != nil {
			logging.Errorf("editor: save %s: %v", m.opts.ConfigPath, err)
			return m.errorNotice(err)
		}
	}
	m.dirty = false
	logging.Infof("editor: saved %s", m.opts.DataPath)
	return m.startNotice("saved "+m.opts.DataPath, "success")
}

func writeCSVFile(path string, ds *models.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteCSV(f, ds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (m *Model) clampCursor() {
	ds := m.doc.Dataset()
	m.row = min(max(m.row, 0), max(ds.Len()-1, 0))
	m.col = min(max(m.col, 0), max(len(ds.Columns)-1, 0))
}
