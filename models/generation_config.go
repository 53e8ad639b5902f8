package models

import "time"

// Seasonality selects the calendar pattern added on top of the trend.
type Seasonality string

const (
	SeasonalityWeekly  Seasonality = "weekly"
	SeasonalityMonthly Seasonality = "monthly"
	SeasonalityYearly  Seasonality = "yearly"
)

// ParseSeasonality validates the wire form of a seasonality kind.
func ParseSeasonality(s string) (Seasonality, error) {
	switch Seasonality(s) {
	case SeasonalityWeekly, SeasonalityMonthly, SeasonalityYearly:
		return Seasonality(s), nil
	}
	return "", NewError(InvalidConfiguration, "unknown seasonality %q (want weekly, monthly or yearly)", s)
}

// GenerationConfig carries the caller-owned parameters for one synthesis run.
// TrendStrength and NoiseLevel are nominally in [0,1] but are not clamped;
// values outside the range extrapolate the trend / noise scale.
type GenerationConfig struct {
	StartDate     time.Time   `json:"start_date"`
	Periods       int         `json:"periods"`
	Seasonality   Seasonality `json:"seasonality"`
	TrendStrength float64     `json:"trend_strength"`
	NoiseLevel    float64     `json:"noise_level"`
}
