package forecast

import (
	"math"

	"sf-server/models"
)

// Estimator is the capability the Forecaster needs: fit a univariate series
// and project it forward. Concrete estimation algorithms can be swapped or
// mocked behind this interface.
type Estimator interface {
	FitAndForecast(values []float64, horizon int) ([]float64, error)
}

// ARIMAEstimator fits an autoregressive-integrated model with a fixed order:
// P autoregressive lags on the D-times differenced series, no moving-average
// terms. Estimation uses Yule-Walker initial coefficients refined by
// conditional-sum-of-squares gradient descent.
type ARIMAEstimator struct {
	P int
	D int
}

// NewARIMAEstimator returns the fixed ARIMA(5,1,0) estimator used for sales
// forecasting.
func NewARIMAEstimator() *ARIMAEstimator {
	return &ARIMAEstimator{P: 5, D: 1}
}

// minObservations is the shortest history the estimator accepts for its
// order; below it the lag structure cannot be estimated.
func (e *ARIMAEstimator) minObservations() int {
	return e.P + e.D + 10
}

// FitAndForecast fits the model to values and returns horizon point
// forecasts on the original (undifferenced) scale.
func (e *ARIMAEstimator) FitAndForecast(values []float64, horizon int) ([]float64, error) {
	if len(values) < e.minObservations() {
		return nil, models.NewError(models.InsufficientData,
			"need at least %d observations for ARIMA(%d,%d,0), got %d",
			e.minObservations(), e.P, e.D, len(values))
	}

	diffed := values
	for i := 0; i < e.D; i++ {
		diffed = diff(diffed)
	}

	coeffs, intercept, err := e.fitAR(diffed)
	if err != nil {
		return nil, err
	}

	forecasts := e.project(diffed, coeffs, intercept, horizon)
	if e.D > 0 {
		forecasts = integrate(forecasts, values, e.D)
	}

	for _, v := range forecasts {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, models.NewError(models.FitFailure, "model produced non-finite forecasts")
		}
	}
	return forecasts, nil
}

// fitAR estimates the AR coefficients of the differenced series. Initial
// estimates come from the Yule-Walker equations (Levinson-Durbin recursion on
// the sample autocorrelations), then conditional-sum-of-squares gradient
// steps refine them.
func (e *ARIMAEstimator) fitAR(y []float64) ([]float64, float64, error) {
	n := len(y)
	p := e.P

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)

	acf := autocorrelation(y, p)
	if acf == nil {
		// Zero-variance differenced series. A constant history is degenerate
		// and reported as such; a perfectly linear history (constant nonzero
		// differences) still forecasts cleanly with zero AR coefficients and
		// the mean as drift.
		if mean == 0 {
			return nil, 0, models.NewError(models.FitFailure,
				"degenerate series: constant history has no structure to fit")
		}
		return make([]float64, p), mean, nil
	}

	coeffs := levinsonDurbin(acf, p)
	if coeffs == nil {
		return nil, 0, models.NewError(models.FitFailure, "Yule-Walker initialization failed")
	}

	const (
		maxIter      = 100
		tolerance    = 1e-6
		learningRate = 0.01
	)

	best := make([]float64, p)
	copy(best, coeffs)
	bestSSE := css(y, coeffs, mean, p)

	prevSSE := bestSSE
	for iter := 0; iter < maxIter; iter++ {
		grad := make([]float64, p)
		for t := p; t < n; t++ {
			pred := mean
			for i := 0; i < p; i++ {
				pred += coeffs[i] * (y[t-i-1] - mean)
			}
			resid := y[t] - pred
			for i := 0; i < p; i++ {
				grad[i] -= 2 * resid * (y[t-i-1] - mean)
			}
		}

		for i := 0; i < p; i++ {
			coeffs[i] -= learningRate * grad[i] / float64(n)
			// stationarity bounds
			coeffs[i] = math.Max(-0.99, math.Min(0.99, coeffs[i]))
		}

		sse := css(y, coeffs, mean, p)
		if sse < bestSSE {
			bestSSE = sse
			copy(best, coeffs)
		}
		if math.Abs(prevSSE-sse) < tolerance {
			break
		}
		prevSSE = sse
	}

	for _, c := range best {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, 0, models.NewError(models.FitFailure, "estimation did not converge")
		}
	}
	return best, mean, nil
}

// css is the conditional sum of squared one-step residuals.
func css(y, coeffs []float64, mean float64, p int) float64 {
	sse := 0.0
	for t := p; t < len(y); t++ {
		pred := mean
		for i := 0; i < p; i++ {
			pred += coeffs[i] * (y[t-i-1] - mean)
		}
		resid := y[t] - pred
		sse += resid * resid
	}
	return sse
}

// project runs the AR forecast recursion on the differenced scale. Each step
// feeds the previous forecasts back in as lagged observations.
func (e *ARIMAEstimator) project(y, coeffs []float64, intercept float64, horizon int) []float64 {
	n := len(y)
	ext := make([]float64, n+horizon)
	copy(ext, y)

	for h := 0; h < horizon; h++ {
		t := n + h
		pred := intercept
		for i := 0; i < e.P && t-i-1 >= 0; i++ {
			pred += coeffs[i] * (ext[t-i-1] - intercept)
		}
		ext[t] = pred
	}
	return ext[n:]
}

// diff computes the first difference of a series.
func diff(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out
}

// integrate undoes d orders of differencing, anchoring each pass on the last
// pre-differencing observation.
func integrate(forecasts, original []float64, d int) []float64 {
	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	for i := 0; i < d; i++ {
		last := original[len(original)-1-i]
		for j := range result {
			if j == 0 {
				result[j] += last
			} else {
				result[j] += result[j-1]
			}
		}
	}
	return result
}

// autocorrelation returns the sample ACF for lags 0..maxLag, or nil when the
// series has zero variance.
func autocorrelation(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// levinsonDurbin solves the Yule-Walker equations for AR coefficients.
func levinsonDurbin(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	phi[0] = acf[1]
	if order == 1 {
		return phi
	}

	v := 1 - phi[0]*phi[0]
	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		lambda /= v

		next := make([]float64, i+1)
		for j := 0; j < i; j++ {
			next[j] = phi[j] - lambda*phi[i-1-j]
		}
		next[i] = lambda
		copy(phi, next)

		v *= 1 - lambda*lambda
		if v <= 0 {
			break
		}
	}
	return phi
}
