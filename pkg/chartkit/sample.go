package chartkit

import "github.com/ukaji3/chartkit-go/pkg/chartkit/models"

// DefaultDataset returns the x/y sample shown in a new chart.
func DefaultDataset() *models.Dataset {
	ds := models.NewDataset("x", "y")
	for i, label := range []string{"A", "B", "C", "D", "E"} {
		ds.Rows = append(ds.Rows, models.Row{models.Text(label), models.Number(float64(i + 1))})
	}
	return ds
}

// SampleBusinessDataset returns twelve months of revenue, expenses and profit.
func SampleBusinessDataset() *models.Dataset {
	months := []struct {
		date                      string
		revenue, expenses, profit float64
	}{
		{"2023-01", 45000, 32000, 13000},
		{"2023-02", 47500, 33500, 14000},
		{"2023-03", 51000, 35000, 16000},
		{"2023-04", 49000, 34500, 14500},
		{"2023-05", 52500, 36000, 16500},
		{"2023-06", 56000, 37500, 18500},
		{"2023-07", 58000, 38000, 20000},
		{"2023-08", 61000, 39500, 21500},
		{"2023-09", 64000, 41000, 23000},
		{"2023-10", 67500, 42500, 25000},
		{"2023-11", 71000, 44000, 27000},
		{"2023-12", 75000, 46000, 29000},
	}
	ds := models.NewDataset("date", "revenue", "expenses", "profit")
	for _, m := range months {
		ds.Rows = append(ds.Rows, models.Row{
			models.Text(m.date),
			models.Number(m.revenue),
			models.Number(m.expenses),
			models.Number(m.profit),
		})
	}
	return ds
}
