package generator

import (
	"math"
	"math/rand"
	"time"

	"sf-server/models"
)

const (
	baseLevel = 100.0

	// sparse multiplicative event spikes, modeling promotions/holidays
	eventShare     = 0.05
	eventFactorMin = 1.2
	eventFactorMax = 1.5

	noiseScale         = 100.0
	categoryNoiseScale = 80.0
)

// Synthesizer builds synthetic daily sales series from a GenerationConfig.
// All stochastic detail is drawn from the single injected random source, so a
// caller that controls the seed gets reproducible output. A Synthesizer is
// not safe for concurrent use; give each request its own.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer constructs a Synthesizer around the given random source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// NewSeededSynthesizer constructs a Synthesizer with its own source seeded
// from seed, for reproducible runs.
func NewSeededSynthesizer(seed int64) *Synthesizer {
	return NewSynthesizer(rand.New(rand.NewSource(seed)))
}

// Generate produces the primary series for the config: a linear trend from
// 100 to 100+100*TrendStrength, the seasonal bonus for the configured kind,
// per-day gaussian noise, a floor at zero, and sparse multiplicative event
// spikes on ~5% of the days. Values are rounded to two decimals.
//
// The zero floor can shift the realized moments away from the requested
// trend/noise parameters; that is a documented side effect of the
// non-negativity invariant, not a bug.
func (s *Synthesizer) Generate(cfg models.GenerationConfig) (models.TimeSeries, error) {
	dataset, err := s.GenerateDataset(cfg, nil)
	if err != nil {
		return models.TimeSeries{}, err
	}
	return dataset.Sales, nil
}

// GenerateDataset produces the primary series plus one derived category
// series per name. Categories reuse the primary trend and seasonal component
// arrays (pre-noise) with independently sampled scale factors; they are not
// subject to event injection.
func (s *Synthesizer) GenerateDataset(cfg models.GenerationConfig, categoryNames []string) (models.Dataset, error) {
	if err := validate(cfg); err != nil {
		return models.Dataset{}, err
	}

	n := cfg.Periods
	dates := dateRange(cfg.StartDate, n)

	trend := s.trendComponent(n, cfg.TrendStrength)
	seasonal := s.seasonalComponent(dates, cfg.Seasonality)

	sales := make([]float64, n)
	for i := 0; i < n; i++ {
		sales[i] = trend[i] + seasonal[i] + s.rng.NormFloat64()*cfg.NoiseLevel*noiseScale
		if sales[i] < 0 {
			sales[i] = 0
		}
	}

	s.injectEvents(sales)

	for i := range sales {
		sales[i] = round2(sales[i])
		if math.IsNaN(sales[i]) || math.IsInf(sales[i], 0) {
			return models.Dataset{}, models.NewError(models.NumericOverflow,
				"non-finite value synthesized at index %d", i)
		}
	}

	dataset := models.Dataset{
		Sales: models.TimeSeries{Dates: dates, Values: sales},
	}
	for _, name := range categoryNames {
		dataset.Categories = append(dataset.Categories, s.expandCategory(name, dates, trend, seasonal, cfg.NoiseLevel))
	}
	return dataset, nil
}

// trendComponent is a linear ramp from 100 to 100+100*strength, endpoints
// inclusive and evenly spaced.
func (s *Synthesizer) trendComponent(n int, strength float64) []float64 {
	trend := make([]float64, n)
	span := baseLevel * strength
	for i := 0; i < n; i++ {
		if n == 1 {
			trend[i] = baseLevel
			continue
		}
		trend[i] = baseLevel + span*float64(i)/float64(n-1)
	}
	return trend
}

func (s *Synthesizer) seasonalComponent(dates []time.Time, kind models.Seasonality) []float64 {
	bonus := seasonalBonus[kind]
	seasonal := make([]float64, len(dates))
	for i, d := range dates {
		seasonal[i] = bonus(d)
	}
	return seasonal
}

// injectEvents multiplies round(n*0.05) distinct days by an independent
// uniform factor in [1.2, 1.5). Applied after the zero floor, so the
// non-negativity invariant is preserved.
func (s *Synthesizer) injectEvents(sales []float64) {
	count := int(math.Round(float64(len(sales)) * eventShare))
	for _, idx := range s.rng.Perm(len(sales))[:count] {
		sales[idx] *= eventFactorMin + s.rng.Float64()*(eventFactorMax-eventFactorMin)
	}
}

func validate(cfg models.GenerationConfig) error {
	if cfg.Periods <= 0 {
		return models.NewError(models.InvalidConfiguration, "periods must be positive, got %d", cfg.Periods)
	}
	if cfg.StartDate.IsZero() {
		return models.NewError(models.InvalidConfiguration, "start date is required")
	}
	if _, ok := seasonalBonus[cfg.Seasonality]; !ok {
		return models.NewError(models.InvalidConfiguration, "unknown seasonality %q", cfg.Seasonality)
	}
	return nil
}

func dateRange(start time.Time, n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
