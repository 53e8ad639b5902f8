package generator

import (
	"time"

	"sf-server/models"
)

const (
	categoryTrendScaleMin    = 0.6
	categoryTrendScaleMax    = 1.4
	categorySeasonalScaleMin = 0.8
	categorySeasonalScaleMax = 1.2
)

// expandCategory derives a correlated secondary series from the primary
// series' trend and seasonal components: one scale factor per component,
// a fresh noise draw, a zero floor, two-decimal rounding. Event spikes are
// deliberately not applied to categories.
func (s *Synthesizer) expandCategory(name string, dates []time.Time, trend, seasonal []float64, noiseLevel float64) models.CategorySeries {
	trendScale := s.uniform(categoryTrendScaleMin, categoryTrendScaleMax)
	seasonalScale := s.uniform(categorySeasonalScaleMin, categorySeasonalScaleMax)

	values := make([]float64, len(trend))
	for i := range values {
		v := trend[i]*trendScale + seasonal[i]*seasonalScale + s.rng.NormFloat64()*noiseLevel*categoryNoiseScale
		if v < 0 {
			v = 0
		}
		values[i] = round2(v)
	}

	return models.CategorySeries{
		Name:   name,
		Series: models.TimeSeries{Dates: dates, Values: values},
	}
}

func (s *Synthesizer) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
