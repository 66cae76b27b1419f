package chartkit

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/spf13/cast"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// AddFormulaColumn adds a column whose cells are computed once from
// expression, evaluated against every row. Column values are exposed as
// variables: numbers as float64, text as string and empty cells as nil.
// Columns whose names are not identifiers can be read as $env["my column"].
func (d *Document) AddFormulaColumn(name, expression string) (string, error) {
	if name == "" {
		name = d.freshName("column", 1)
	} else if d.data.HasColumn(name) {
		return "", NewEditError("add_formula", name, -1, ErrDuplicateName)
	}

	cells, err := EvaluateFormula(d.data, expression)
	if err != nil {
		return "", &FormulaError{Column: name, Expression: expression, Err: err}
	}

	next := d.data.Clone()
	next.Columns = append(next.Columns, name)
	for i := range next.Rows {
		next.Rows[i] = append(next.Rows[i], cells[i])
	}
	d.data = next
	if d.axes.CategoryKey == "" {
		d.axes.CategoryKey = name
	}
	return name, nil
}

// EvaluateFormula computes expression for every row of ds. A row whose
// evaluation fails (typically arithmetic on an empty cell) yields an empty
// cell; the error is only returned when no row could be evaluated.
func EvaluateFormula(ds *models.Dataset, expression string) ([]models.Cell, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	out := make([]models.Cell, ds.Len())
	var firstErr error
	failed := 0
	for i := range ds.Rows {
		result, err := expr.Run(program, rowEnv(ds, i))
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("row %d: %w", i, err)
			}
			failed++
			out[i] = models.Empty()
			continue
		}
		out[i] = resultCell(result)
	}
	if failed > 0 && failed == len(out) {
		return nil, firstErr
	}
	return out, nil
}

// rowEnv builds the variable map for row i.
func rowEnv(ds *models.Dataset, i int) map[string]any {
	env := make(map[string]any, len(ds.Columns))
	for col, name := range ds.Columns {
		c := ds.Rows[i][col]
		switch c.Kind() {
		case models.KindNumber:
			v, _ := c.Float()
			env[name] = v
		case models.KindText:
			env[name] = c.String()
		default:
			env[name] = nil
		}
	}
	return env
}

func resultCell(v any) models.Cell {
	switch t := v.(type) {
	case nil:
		return models.Empty()
	case string:
		return models.Text(t)
	case bool:
		return models.Text(cast.ToString(t))
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return models.Number(f)
	}
	return models.Text(cast.ToString(v))
}
