package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"sf-server/config"
	"sf-server/models"
	services "sf-server/service"
	"sf-server/util"
)

const PERIODS_QUERY_ARG = "periods"

// ForecastRequest is the JSON body of the forecast route.
type ForecastRequest struct {
	ForecastPeriods *int `json:"forecast_periods"`
}

// ForecastPoint is one forecasted day in the response.
type ForecastPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ForecastResponse carries the point forecast and its error metrics.
type ForecastResponse struct {
	Status   string              `json:"status"`
	Forecast []ForecastPoint     `json:"forecast"`
	Metrics  models.ErrorMetrics `json:"metrics"`
}

// ForecastHandler serves the forecast and forecast-chart routes.
type ForecastHandler struct {
	forecastService *services.ForecastService
}

// NewForecastHandler constructs a ForecastHandler with its service dependency.
func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// Forecast handles POST /v1/forecast.
func (h *ForecastHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	horizon := config.DEFAULT_FORECAST_PERIODS
	if req.ForecastPeriods != nil {
		horizon = *req.ForecastPeriods
	}

	_, result, err := h.forecastService.Forecast(horizon)
	if err != nil {
		log.Println("Error forecasting:", err)
		h.writeForecastError(w, err)
		return
	}

	points := make([]ForecastPoint, len(result.Values))
	for i := range result.Values {
		points[i] = ForecastPoint{
			Date:  result.Dates[i].Format(models.DateLayout),
			Value: result.Values[i],
		}
	}

	WriteJSON(w, http.StatusOK, ForecastResponse{
		Status:   "success",
		Forecast: points,
		Metrics:  result.Metrics,
	})
}

// ForecastChart handles GET /v1/charts/forecast?periods=N with an HTML chart
// of the history plus the forecast band.
func (h *ForecastHandler) ForecastChart(w http.ResponseWriter, r *http.Request) {
	horizon := config.DEFAULT_FORECAST_PERIODS
	if v := r.URL.Query().Get(PERIODS_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid argument "+PERIODS_QUERY_ARG)
			return
		}
		horizon = parsed
	}

	history, result, err := h.forecastService.Forecast(horizon)
	if err != nil {
		log.Println("Error forecasting for chart:", err)
		h.writeForecastError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotForecast(w, history, *result); err != nil {
		log.Println("Error rendering forecast chart:", err)
	}
}

func (h *ForecastHandler) writeForecastError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNoDataset) {
		WriteError(w, http.StatusNotFound, "No dataset found. Please generate one first.")
		return
	}
	WriteCoreError(w, err)
}
