package chartkit

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// BuildView derives the rows handed to the renderer. Stages run in a fixed
// order: sort, range window, normalize, cumulative, percentage of total,
// moving average. Each disabled stage passes its input through. ds is never
// modified and the result shares no rows with it.
func BuildView(ds *models.Dataset, axes models.Axes, opts models.ViewOptions) *models.Dataset {
	view := ds.Clone()
	if view.Len() == 0 {
		return view
	}

	sortRows(view, axes.CategoryKey, opts.SortOrder)
	view.Rows = view.Rows[:VisibleRowCount(view.Len(), opts.RangePercent)]

	cols := valueColumns(view, axes.ValueKeys)
	t := opts.Transforms
	if t.Normalize {
		normalize(view, cols)
	}
	if t.Cumulative {
		cumulative(view, cols)
	}
	if t.Percentage {
		percentage(view, cols)
	}
	if t.MovingAverage.Enabled {
		movingAverage(view, axes.ValueKeys, t.MovingAverage.Window)
	}
	return view
}

// VisibleRowCount returns max(1, ceil(n*pct/100)) capped at n; pct is clamped to [1,100].
func VisibleRowCount(n, pct int) int {
	if n == 0 {
		return 0
	}
	if pct < 1 {
		pct = 1
	}
	if pct > 100 {
		pct = 100
	}
	visible := (n*pct + 99) / 100
	if visible < 1 {
		visible = 1
	}
	if visible > n {
		visible = n
	}
	return visible
}

func sortRows(ds *models.Dataset, categoryKey string, order models.SortOrder) {
	if order != models.SortAscending && order != models.SortDescending {
		return
	}
	col := ds.ColumnIndex(categoryKey)
	if col < 0 {
		return
	}
	coll := collate.New(language.Und)
	compare := func(a, b models.Cell) int {
		av, aok := a.Float()
		bv, bok := b.Float()
		if aok && bok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
		return coll.CompareString(a.String(), b.String())
	}
	sort.SliceStable(ds.Rows, func(i, j int) bool {
		c := compare(ds.Rows[i][col], ds.Rows[j][col])
		if order == models.SortDescending {
			return c > 0
		}
		return c < 0
	})
}

func valueColumns(ds *models.Dataset, keys []string) []int {
	var cols []int
	for _, k := range keys {
		if idx := ds.ColumnIndex(k); idx >= 0 {
			cols = append(cols, idx)
		}
	}
	return cols
}

func normalize(ds *models.Dataset, cols []int) {
	for _, col := range cols {
		first := true
		var lo, hi float64
		for _, row := range ds.Rows {
			v, ok := row[col].Float()
			if !ok {
				continue
			}
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
		// A constant series keeps its raw values.
		if first || hi <= lo {
			continue
		}
		for _, row := range ds.Rows {
			if v, ok := row[col].Float(); ok {
				row[col] = models.Number((v - lo) / (hi - lo))
			}
		}
	}
}

func cumulative(ds *models.Dataset, cols []int) {
	for _, col := range cols {
		sum := 0.0
		for _, row := range ds.Rows {
			if v, ok := row[col].Float(); ok {
				sum += v
				row[col] = models.Number(sum)
			}
		}
	}
}

func percentage(ds *models.Dataset, cols []int) {
	for _, col := range cols {
		total := 0.0
		for _, row := range ds.Rows {
			if v, ok := row[col].Float(); ok {
				total += v
			}
		}
		if total <= 0 {
			continue
		}
		for _, row := range ds.Rows {
			if v, ok := row[col].Float(); ok {
				row[col] = models.Number(100 * v / total)
			}
		}
	}
}

// movingAverage appends a "<key>_MA" column per value key holding the mean of
// the numeric cells in the trailing window ending at each row. The first
// window-1 rows average over the rows available so far.
func movingAverage(ds *models.Dataset, keys []string, window int) {
	if window < 2 || ds.Len() < window {
		return
	}
	for _, key := range keys {
		src := ds.ColumnIndex(key)
		if src < 0 {
			continue
		}
		dst := ds.ColumnIndex(key + models.MovingAverageSuffix)
		if dst < 0 {
			ds.Columns = append(ds.Columns, key+models.MovingAverageSuffix)
			dst = len(ds.Columns) - 1
			for i := range ds.Rows {
				ds.Rows[i] = append(ds.Rows[i], models.Empty())
			}
		}
		for i := range ds.Rows {
			start := i - window + 1
			if start < 0 {
				start = 0
			}
			sum, n := 0.0, 0
			for j := start; j <= i; j++ {
				if v, ok := ds.Rows[j][src].Float(); ok {
					sum += v
					n++
				}
			}
			if n == 0 {
				ds.Rows[i][dst] = models.Empty()
				continue
			}
			ds.Rows[i][dst] = models.Number(sum / float64(n))
		}
	}
}
