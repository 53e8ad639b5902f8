package forecast

import (
	"math"
	"time"

	"sf-server/models"
)

// Forecaster fits a model to a historical series and projects it over a
// requested horizon. The estimation algorithm is injected so tests can stub
// it; production uses the fixed ARIMA(5,1,0) estimator.
type Forecaster struct {
	estimator Estimator
}

// NewForecaster constructs a Forecaster around the given estimator.
func NewForecaster(estimator Estimator) *Forecaster {
	return &Forecaster{estimator: estimator}
}

// NewDefaultForecaster constructs a Forecaster with the ARIMA(5,1,0)
// estimator.
func NewDefaultForecaster() *Forecaster {
	return NewForecaster(NewARIMAEstimator())
}

// Forecast projects history forward by horizon daily steps and scores the
// projection against the most recent historical observations.
//
// The metrics compare forecasted future values with the last horizon values
// the series already observed: a measure of how far the unconditional
// forecast drifts from the recent past, not a held-out validation.
func (f *Forecaster) Forecast(history models.TimeSeries, horizon int) (*models.ForecastResult, error) {
	if horizon <= 0 {
		return nil, models.NewError(models.InvalidConfiguration,
			"forecast horizon must be positive, got %d", horizon)
	}
	if history.Len() == 0 {
		return nil, models.NewError(models.InsufficientData, "historical series is empty")
	}
	if !history.IsFinite() {
		return nil, models.NewError(models.NumericOverflow,
			"historical series contains non-finite values")
	}

	values, err := f.estimator.FitAndForecast(history.Values, horizon)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, horizon)
	next := history.LastDate().AddDate(0, 0, 1)
	for i := range dates {
		dates[i] = next.AddDate(0, 0, i)
	}

	return &models.ForecastResult{
		Dates:   dates,
		Values:  values,
		Metrics: scoreAgainstTail(values, history),
	}, nil
}

// scoreAgainstTail computes MSE and MAE between the forecast and the tail of
// the historical series, over min(horizon, history length) points.
func scoreAgainstTail(forecast []float64, history models.TimeSeries) models.ErrorMetrics {
	tail := history.Tail(len(forecast))
	k := len(tail)
	if k > len(forecast) {
		k = len(forecast)
	}
	if k == 0 {
		return models.ErrorMetrics{}
	}

	var sqSum, absSum float64
	for i := 0; i < k; i++ {
		d := tail[i] - forecast[i]
		sqSum += d * d
		absSum += math.Abs(d)
	}
	return models.ErrorMetrics{
		MSE: sqSum / float64(k),
		MAE: absSum / float64(k),
	}
}
