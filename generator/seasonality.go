package generator

import (
	"time"

	"sf-server/models"
)

// seasonalFunc computes the additive calendar bonus for one day.
type seasonalFunc func(t time.Time) float64

// seasonalBonus maps each seasonality kind to its computation. Adding a new
// pattern means adding one entry here; nothing else changes.
var seasonalBonus = map[models.Seasonality]seasonalFunc{
	models.SeasonalityWeekly:  weeklyBonus,
	models.SeasonalityMonthly: monthlyBonus,
	models.SeasonalityYearly:  yearlyBonus,
}

// weeklyBonus boosts weekends: Friday +20, Saturday +30, Sunday +40.
func weeklyBonus(t time.Time) float64 {
	switch t.Weekday() {
	case time.Friday:
		return 20
	case time.Saturday:
		return 30
	case time.Sunday:
		return 40
	}
	return 0
}

// monthlyBonus grows toward each month's end: 30 * day / daysInMonth.
func monthlyBonus(t time.Time) float64 {
	return 30 * float64(t.Day()) / float64(daysInMonth(t))
}

// yearlyBonus boosts the summer (Jun-Aug, +30) and the holiday season
// (Nov-Dec, +40).
func yearlyBonus(t time.Time) float64 {
	switch m := t.Month(); {
	case m >= time.June && m <= time.August:
		return 30
	case m >= time.November && m <= time.December:
		return 40
	}
	return 0
}

func daysInMonth(t time.Time) int {
	// day 0 of the next month is the last day of t's month
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
