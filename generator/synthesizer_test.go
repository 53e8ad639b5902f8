package generator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sf-server/models"
)

func weeklyConfig(periods int, trend, noise float64) models.GenerationConfig {
	return models.GenerationConfig{
		StartDate:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Periods:       periods,
		Seasonality:   models.SeasonalityWeekly,
		TrendStrength: trend,
		NoiseLevel:    noise,
	}
}

// expectedBase computes trend+seasonal (the deterministic, pre-noise,
// pre-event shape) for a config, rounded like the synthesizer output.
func expectedBase(cfg models.GenerationConfig) []float64 {
	bonus := seasonalBonus[cfg.Seasonality]
	out := make([]float64, cfg.Periods)
	for i := 0; i < cfg.Periods; i++ {
		t := 100.0
		if cfg.Periods > 1 {
			t = 100 + 100*cfg.TrendStrength*float64(i)/float64(cfg.Periods-1)
		}
		out[i] = round2(t + bonus(cfg.StartDate.AddDate(0, 0, i)))
	}
	return out
}

func TestGenerate_ShapeAndInvariants(t *testing.T) {
	synth := NewSeededSynthesizer(42)
	cfg := weeklyConfig(365, 0.5, 0.2)

	series, err := synth.Generate(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if series.Len() != 365 {
		t.Fatalf("Expected 365 entries, got %d", series.Len())
	}

	for i, v := range series.Values {
		if v < 0 {
			t.Errorf("Negative value %f at index %d", v, i)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Non-finite value at index %d", i)
		}
	}

	for i, d := range series.Dates {
		want := cfg.StartDate.AddDate(0, 0, i)
		if !d.Equal(want) {
			t.Errorf("Date at index %d: expected %v, got %v", i, want, d)
		}
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	cfg := weeklyConfig(100, 0.5, 0.2)

	first, err := NewSeededSynthesizer(7).GenerateDataset(cfg, []string{"Electronics", "Food"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := NewSeededSynthesizer(7).GenerateDataset(cfg, []string{"Electronics", "Food"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, first, second, "same seed must reproduce the dataset")
}

func TestWeeklyBonus_PureFunctionOfWeekday(t *testing.T) {
	// 2023-01-02 is a Monday
	monday := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	expected := map[time.Weekday]float64{
		time.Monday:    0,
		time.Tuesday:   0,
		time.Wednesday: 0,
		time.Thursday:  0,
		time.Friday:    20,
		time.Saturday:  30,
		time.Sunday:    40,
	}

	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		if got := weeklyBonus(d); got != expected[d.Weekday()] {
			t.Errorf("weeklyBonus(%v) = %f, want %f", d.Weekday(), got, expected[d.Weekday()])
		}
	}
}

func TestMonthlyBonus_MonotoneWithinMonthAndResets(t *testing.T) {
	// exactly 30 on the last day of any month
	lastOfJan := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	if got := monthlyBonus(lastOfJan); got != 30 {
		t.Errorf("monthlyBonus(Jan 31) = %f, want 30", got)
	}
	lastOfFeb := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	if got := monthlyBonus(lastOfFeb); got != 30 {
		t.Errorf("monthlyBonus(Feb 28) = %f, want 30", got)
	}

	// monotone non-decreasing inside a month
	prev := 0.0
	for day := 1; day <= 31; day++ {
		got := monthlyBonus(time.Date(2023, 1, day, 0, 0, 0, 0, time.UTC))
		if got < prev {
			t.Errorf("monthlyBonus decreased at Jan %d: %f < %f", day, got, prev)
		}
		prev = got
	}

	// resets at the month boundary
	firstOfFeb := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	if monthlyBonus(firstOfFeb) >= monthlyBonus(lastOfJan) {
		t.Error("monthlyBonus should reset at the month boundary")
	}
}

func TestYearlyBonus_SummerAndHolidayWindows(t *testing.T) {
	cases := []struct {
		month time.Month
		want  float64
	}{
		{time.January, 0},
		{time.May, 0},
		{time.June, 30},
		{time.July, 30},
		{time.August, 30},
		{time.September, 0},
		{time.October, 0},
		{time.November, 40},
		{time.December, 40},
	}
	for _, c := range cases {
		d := time.Date(2023, c.month, 15, 0, 0, 0, 0, time.UTC)
		if got := yearlyBonus(d); got != c.want {
			t.Errorf("yearlyBonus(%v) = %f, want %f", c.month, got, c.want)
		}
	}
}

// With noise disabled the only stochastic deviation from trend+seasonal is
// event injection, so counting deviating days verifies the event mask:
// exactly round(n*0.05) distinct days, each boosted by a factor in [1.2,1.5).
func TestGenerate_EventInjectionCountAndFactor(t *testing.T) {
	cfg := weeklyConfig(200, 0.5, 0)
	series, err := NewSeededSynthesizer(99).Generate(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	base := expectedBase(cfg)
	evented := 0
	for i, v := range series.Values {
		if v == base[i] {
			continue
		}
		evented++
		ratio := v / base[i]
		if ratio < 1.19 || ratio > 1.51 {
			t.Errorf("Event factor at index %d out of range: %f", i, ratio)
		}
	}

	if evented != 10 {
		t.Errorf("Expected round(200*0.05)=10 evented days, got %d", evented)
	}
}

// End-to-end weekend scenario: 14 days from 2023-01-01, no noise. Day 6 is a
// Saturday and day 7 a Sunday; their values exceed the weekday shape by 30
// and 40 respectively, modulo at most one event-boosted day.
func TestGenerate_WeekendScenario(t *testing.T) {
	cfg := weeklyConfig(14, 0.5, 0)
	series, err := NewSeededSynthesizer(3).Generate(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	base := expectedBase(cfg)
	deviations := 0
	for i, v := range series.Values {
		if v != base[i] {
			deviations++
		}
	}
	if deviations > 1 {
		t.Fatalf("Expected at most 1 event-boosted day out of 14, got %d", deviations)
	}

	// the deterministic shape itself carries the weekend bonuses
	trend6 := 100 + 100*cfg.TrendStrength*6.0/13.0
	trend7 := 100 + 100*cfg.TrendStrength*7.0/13.0
	assert.InDelta(t, trend6+30, base[6], 0.01, "Saturday bonus")
	assert.InDelta(t, trend7+40, base[7], 0.01, "Sunday bonus")
}

func TestGenerateDataset_Categories(t *testing.T) {
	cfg := weeklyConfig(60, 0.5, 0)
	names := []string{"Electronics", "Clothing", "Food", "Home Goods"}

	dataset, err := NewSeededSynthesizer(11).GenerateDataset(cfg, names)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dataset.Categories) != 4 {
		t.Fatalf("Expected 4 categories, got %d", len(dataset.Categories))
	}

	for _, c := range dataset.Categories {
		if c.Series.Len() != dataset.Sales.Len() {
			t.Errorf("Category %s length %d != primary length %d", c.Name, c.Series.Len(), dataset.Sales.Len())
		}
		for i, v := range c.Series.Values {
			if v < 0 {
				t.Errorf("Category %s has negative value %f at index %d", c.Name, v, i)
			}
		}
	}

	// With no noise, a category's value on a zero-seasonal weekday is
	// trend * its single trend scale factor, so the ratio to the trend is
	// constant across weekdays and bounded by the sampling range.
	base := expectedBase(cfg)
	for _, c := range dataset.Categories {
		var ratios []float64
		for i, d := range c.Series.Dates {
			if weeklyBonus(d) != 0 {
				continue
			}
			ratios = append(ratios, c.Series.Values[i]/base[i])
		}
		for _, r := range ratios {
			assert.InDelta(t, ratios[0], r, 0.001, "category %s trend scale should be constant", c.Name)
			if r < 0.59 || r > 1.41 {
				t.Errorf("Category %s trend scale %f outside [0.6,1.4]", c.Name, r)
			}
		}
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	synth := NewSeededSynthesizer(1)

	cases := []struct {
		name string
		cfg  models.GenerationConfig
	}{
		{"zero periods", weeklyConfig(0, 0.5, 0.2)},
		{"negative periods", weeklyConfig(-5, 0.5, 0.2)},
		{"zero start date", models.GenerationConfig{Periods: 10, Seasonality: models.SeasonalityWeekly}},
		{"unknown seasonality", models.GenerationConfig{
			StartDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Periods:     10,
			Seasonality: "quarterly",
		}},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := synth.Generate(test.cfg)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if kind := models.KindOf(err); kind != models.InvalidConfiguration {
				t.Errorf("Expected InvalidConfiguration, got %s", kind)
			}
		})
	}
}

func TestGenerate_SinglePeriod(t *testing.T) {
	series, err := NewSeededSynthesizer(5).Generate(weeklyConfig(1, 0.5, 0))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if series.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", series.Len())
	}
	// trend ramp collapses to the base level; 2023-01-01 is a Sunday (+40).
	// round(1*0.05) = 0, so no event boost is possible here.
	assert.InDelta(t, 140, series.Values[0], 0.01)
}
