package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sf-server/models"
)

// PlotDataset renders an HTML line chart of the generated dataset: the
// primary sales series plus one line per category.
func PlotDataset(w io.Writer, ds models.Dataset) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Generated Sales Data",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Generated Sales Data"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	line.SetXAxis(dateLabels(ds.Sales)).
		AddSeries("Sales", lineData(ds.Sales.Values))
	for _, c := range ds.Categories {
		line.AddSeries(c.Name, lineData(c.Series.Values))
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render dataset chart: %w", err)
	}
	return nil
}

// PlotForecast renders the historical series with the forecast appended,
// plus a band of forecast ± the forecast's own sample standard deviation.
// The band is a display heuristic only, not a statistical prediction
// interval.
func PlotForecast(w io.Writer, history models.TimeSeries, result models.ForecastResult) error {
	forecast := result.Series()
	labels := append(dateLabels(history), dateLabels(forecast)...)

	std := forecast.Std()
	upper := make([]float64, forecast.Len())
	lower := make([]float64, forecast.Len())
	for i, v := range forecast.Values {
		upper[i] = v + std
		lower[i] = v - std
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Sales Forecast",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Sales Forecast"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	pad := history.Len()
	line.SetXAxis(labels).
		AddSeries("Historical", lineData(history.Values)).
		AddSeries("Forecast", padded(forecast.Values, pad),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"})).
		AddSeries("Upper Band", padded(upper, pad),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dotted", Opacity: 0.4})).
		AddSeries("Lower Band", padded(lower, pad),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dotted", Opacity: 0.4}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render forecast chart: %w", err)
	}
	return nil
}

func dateLabels(s models.TimeSeries) []string {
	labels := make([]string, len(s.Dates))
	for i, d := range s.Dates {
		labels[i] = d.Format(models.DateLayout)
	}
	return labels
}

func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

// padded prefixes the series with empty points so it lines up with the
// historical region of the x axis.
func padded(values []float64, pad int) []opts.LineData {
	data := make([]opts.LineData, 0, pad+len(values))
	for i := 0; i < pad; i++ {
		data = append(data, opts.LineData{Value: "-"})
	}
	for _, v := range values {
		data = append(data, opts.LineData{Value: v})
	}
	return data
}
