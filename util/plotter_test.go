package util

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"sf-server/models"
)

func TestPlotDataset_RendersHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotDataset(&buf, sampleDataset()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "<html") {
		t.Error("Expected an HTML document")
	}
	if !strings.Contains(html, "Electronics") {
		t.Error("Expected the category series in the chart")
	}
}

func TestPlotForecast_RendersBand(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	history := models.NewTimeSeries(start, []float64{100, 101, 102, 103, 104})
	result := models.ForecastResult{
		Dates:  models.NewTimeSeries(start.AddDate(0, 0, 5), []float64{105, 106, 107}).Dates,
		Values: []float64{105, 106, 107},
	}

	var buf bytes.Buffer
	if err := PlotForecast(&buf, history, result); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	for _, series := range []string{"Historical", "Forecast", "Upper Band", "Lower Band"} {
		if !strings.Contains(html, series) {
			t.Errorf("Expected series %q in the chart", series)
		}
	}
}
