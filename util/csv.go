package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"sf-server/models"
)

const (
	DATE_COLUMN            = "date"
	SALES_COLUMN           = "sales"
	CATEGORY_COLUMN_SUFFIX = "_sales"
)

// WriteDatasetCSV writes the dataset as a CSV table: a date column, the
// primary sales column, then one <category>_sales column per category.
func WriteDatasetCSV(w io.Writer, ds models.Dataset) error {
	cw := csv.NewWriter(w)

	header := []string{DATE_COLUMN, SALES_COLUMN}
	for _, c := range ds.Categories {
		header = append(header, categoryColumn(c.Name))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := 0; i < ds.Sales.Len(); i++ {
		row := []string{
			ds.Sales.Dates[i].Format(models.DateLayout),
			formatValue(ds.Sales.Values[i]),
		}
		for _, c := range ds.Categories {
			row = append(row, formatValue(c.Series.Values[i]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadDatasetCSV parses an uploaded CSV table back into a Dataset. Only
// column presence is validated: the table must carry a date and a sales
// column; any extra *_sales columns become categories.
func ReadDatasetCSV(r io.Reader) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	header := records[0]
	dateIdx, salesIdx := -1, -1
	var categoryIdx []int
	for i, col := range header {
		switch {
		case col == DATE_COLUMN:
			dateIdx = i
		case col == SALES_COLUMN:
			salesIdx = i
		case strings.HasSuffix(col, CATEGORY_COLUMN_SUFFIX):
			categoryIdx = append(categoryIdx, i)
		}
	}
	if dateIdx < 0 || salesIdx < 0 {
		return nil, fmt.Errorf("CSV must contain %q and %q columns", DATE_COLUMN, SALES_COLUMN)
	}

	rows := records[1:]
	dates := make([]time.Time, len(rows))
	sales := make([]float64, len(rows))
	categoryValues := make([][]float64, len(categoryIdx))
	for i := range categoryValues {
		categoryValues[i] = make([]float64, len(rows))
	}

	for i, row := range rows {
		dates[i], err = time.Parse(models.DateLayout, row[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("bad date at row %d: %w", i+1, err)
		}
		sales[i], err = strconv.ParseFloat(row[salesIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("bad sales value at row %d: %w", i+1, err)
		}
		for j, idx := range categoryIdx {
			categoryValues[j][i], err = strconv.ParseFloat(row[idx], 64)
			if err != nil {
				return nil, fmt.Errorf("bad %s value at row %d: %w", header[idx], i+1, err)
			}
		}
	}

	ds := &models.Dataset{
		Sales: models.TimeSeries{Dates: dates, Values: sales},
	}
	for j, idx := range categoryIdx {
		ds.Categories = append(ds.Categories, models.CategorySeries{
			Name:   categoryName(header[idx]),
			Series: models.TimeSeries{Dates: dates, Values: categoryValues[j]},
		})
	}
	return ds, nil
}

func categoryColumn(name string) string {
	return strings.ToLower(name) + CATEGORY_COLUMN_SUFFIX
}

func categoryName(column string) string {
	return strings.TrimSuffix(column, CATEGORY_COLUMN_SUFFIX)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
