package models

// Dataset is the combined table handed to the persistence and chart layers:
// the primary sales series plus any derived category series.
type Dataset struct {
	Sales      TimeSeries       `json:"sales"`
	Categories []CategorySeries `json:"categories,omitempty"`
}

// RowCount returns the number of daily rows in the table.
func (d Dataset) RowCount() int {
	return d.Sales.Len()
}
