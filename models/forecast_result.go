package models

import "time"

// ErrorMetrics scores a forecast against the tail of the historical series.
// This is a backtest-style drift measure against already-observed values,
// not a held-out validation metric.
type ErrorMetrics struct {
	MSE float64 `json:"mse"`
	MAE float64 `json:"mae"`
}

// ForecastResult is the point forecast for the requested horizon together
// with its error metrics. Built fresh on every forecast call.
type ForecastResult struct {
	Dates   []time.Time  `json:"dates"`
	Values  []float64    `json:"values"`
	Metrics ErrorMetrics `json:"metrics"`
}

// Series returns the forecast as a TimeSeries, convenient for charting.
func (r ForecastResult) Series() TimeSeries {
	return TimeSeries{Dates: r.Dates, Values: r.Values}
}
