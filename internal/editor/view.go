package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/format"
)

const (
	categoryMarker = "◆"
	seriesMarker   = "●"
	// lines used by everything except the table body
	chromeHeight = 8
)

func (m *Model) View() string {
	var b strings.Builder

	title := "chartkit"
	if m.opts.DataPath != "" {
		title += " · " + m.opts.DataPath
	}
	if m.dirty {
		title += " *"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.previewLine())
	b.WriteString("\n")

	if m.mode != modeView {
		b.WriteString(inputStyle.Render(m.input.View()))
		b.WriteString("\n")
	}
	if m.noticeMsg != "" {
		st, ok := noticeStyles[m.noticeKind]
		if !ok {
			st = mutedStyle
		}
		b.WriteString(st.Render(noticeText(m.noticeMsg, m.noticeKind)))
		b.WriteString("\n")
	}
	b.WriteString(m.helpView())

	return appStyle.Render(b.String())
}

func (m *Model) renderTable() string {
	ds := m.doc.Dataset()
	axes := m.doc.Axes()
	widths := m.columnWidths()

	var b strings.Builder
	for c := m.colOffset; c < len(ds.Columns) && c < m.colOffset+m.visibleCols(widths); c++ {
		name := ds.Columns[c]
		label := truncate(name, widths[c])
		switch {
		case name == axes.CategoryKey:
			label = categoryStyle.Render(categoryMarker + " " + truncate(name, widths[c]-2))
		case axes.HasValueKey(name):
			label = seriesStyle.Render(seriesMarker + " " + truncate(name, widths[c]-2))
		}
		b.WriteString(headerStyle.Width(widths[c] + 2).Render(label))
	}
	b.WriteString("\n")

	if ds.Len() == 0 {
		b.WriteString(mutedStyle.Render("  (no rows)"))
		b.WriteString("\n")
		return b.String()
	}

	last := min(m.rowOffset+m.tableHeight(), ds.Len())
	for r := m.rowOffset; r < last; r++ {
		for c := m.colOffset; c < len(ds.Columns) && c < m.colOffset+m.visibleCols(widths); c++ {
			st := cellStyle
			if r == m.row && c == m.col {
				st = selectedStyle
			}
			cell := ds.Rows[r][c]
			text := truncate(cell.String(), widths[c])
			if cell.IsNumber() {
				st = st.Align(lipgloss.Right)
			}
			b.WriteString(st.Width(widths[c] + 2).Render(text))
		}
		b.WriteString("\n")
	}
	if last < ds.Len() || m.rowOffset > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  rows %d-%d of %d", m.rowOffset+1, last, ds.Len())))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) statusLine() string {
	axes := m.doc.Axes()
	view := m.doc.ViewOptions()
	t := view.Transforms

	toggle := func(label string, on bool) string {
		if on {
			return seriesStyle.Render(label)
		}
		return mutedStyle.Render(label)
	}
	values := strings.Join(axes.ValueKeys, ", ")
	if values == "" {
		values = "(none)"
	}
	parts := []string{
		"X: " + orNone(axes.CategoryKey),
		"Y: " + values,
		"sort: " + string(view.SortOrder),
		fmt.Sprintf("range: %d%%", view.RangePercent),
		toggle("norm", t.Normalize),
		toggle("cum", t.Cumulative),
		toggle("pct", t.Percentage),
		toggle(fmt.Sprintf("ma(%d)", t.MovingAverage.Window), t.MovingAverage.Enabled),
	}
	return strings.Join(parts, "  ")
}

// previewLine shows the last visible value of every plotted series as it
// would be labelled on the chart.
func (m *Model) previewLine() string {
	in := m.doc.RenderInput()
	n := in.Rows.Len()
	if n == 0 || len(in.ValueKeys) == 0 {
		return mutedStyle.Render(fmt.Sprintf("view: %d rows", n))
	}
	parts := []string{fmt.Sprintf("view: %d rows", n)}
	for _, k := range in.ValueKeys {
		c := in.Rows.Cell(n-1, k)
		parts = append(parts, k+"="+format.Cell(c, in.Format))
	}
	return mutedStyle.Render(strings.Join(parts, "  "))
}

func (m *Model) helpView() string {
	if !m.showHelp {
		return mutedStyle.Render("? help · w save · q quit")
	}
	var lines []string
	for _, b := range m.keys.helpBindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-8s %s", h.Key, h.Desc))
	}
	return mutedStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) columnWidths() []int {
	ds := m.doc.Dataset()
	widths := make([]int, len(ds.Columns))
	for c, name := range ds.Columns {
		w := lipgloss.Width(name) + 2
		for _, row := range ds.Rows {
			w = max(w, lipgloss.Width(row[c].String()))
		}
		widths[c] = min(max(w, 3), cellWidthMax)
	}
	return widths
}

// visibleCols returns how many columns from colOffset fit the window.
func (m *Model) visibleCols(widths []int) int {
	avail := m.width - 4
	n, used := 0, 0
	for c := m.colOffset; c < len(widths); c++ {
		used += widths[c] + 2
		if used > avail && n > 0 {
			break
		}
		n++
	}
	return n
}

func (m *Model) tableHeight() int {
	return max(m.height-chromeHeight, 3)
}

// ensureVisible scrolls so the cursor cell is on screen.
func (m *Model) ensureVisible() {
	h := m.tableHeight()
	if m.row < m.rowOffset {
		m.rowOffset = m.row
	}
	if m.row >= m.rowOffset+h {
		m.rowOffset = m.row - h + 1
	}

	if m.col < m.colOffset {
		m.colOffset = m.col
	}
	widths := m.columnWidths()
	for m.colOffset < m.col && m.col >= m.colOffset+m.visibleCols(widths) {
		m.colOffset++
	}
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > w-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
