package models

import (
	"fmt"
	"math"
	"time"
)

// TimeSeries holds one daily value per calendar day, date-ascending with no
// gaps. Dates and Values are parallel slices of the same length.
type TimeSeries struct {
	Dates  []time.Time `json:"dates"`
	Values []float64   `json:"values"`
}

// NewTimeSeries builds a daily series starting at start.
func NewTimeSeries(start time.Time, values []float64) TimeSeries {
	dates := make([]time.Time, len(values))
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return TimeSeries{Dates: dates, Values: values}
}

// Len returns the number of observations in the series.
func (s TimeSeries) Len() int {
	return len(s.Values)
}

// LastDate returns the date of the final observation.
func (s TimeSeries) LastDate() time.Time {
	if len(s.Dates) == 0 {
		return time.Time{}
	}
	return s.Dates[len(s.Dates)-1]
}

// Tail returns the last n values (all values when n exceeds the length).
func (s TimeSeries) Tail(n int) []float64 {
	if n >= len(s.Values) {
		return s.Values
	}
	return s.Values[len(s.Values)-n:]
}

// Mean returns the arithmetic mean of the values.
func (s TimeSeries) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Std returns the sample standard deviation of the values.
func (s TimeSeries) Std() float64 {
	n := len(s.Values)
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// IsFinite reports whether every value in the series is a finite number.
func (s TimeSeries) IsFinite() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s TimeSeries) ToString() string {
	return fmt.Sprintf("TimeSeries(len=%d, start=%s, end=%s)",
		s.Len(), formatDate(s.Dates), s.LastDate().Format(DateLayout))
}

func formatDate(dates []time.Time) string {
	if len(dates) == 0 {
		return "-"
	}
	return dates[0].Format(DateLayout)
}

// DateLayout is the wire and CSV format for series dates.
const DateLayout = "2006-01-02"

// CategorySeries is a named secondary series derived from the primary one.
// It shares the primary series' dates but carries its own values.
type CategorySeries struct {
	Name   string     `json:"name"`
	Series TimeSeries `json:"series"`
}
