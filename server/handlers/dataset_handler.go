package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sf-server/config"
	"sf-server/models"
	services "sf-server/service"
	"sf-server/util"
)

// GenerateDatasetRequest is the JSON body of the generate route. Absent
// fields fall back to the configured defaults.
type GenerateDatasetRequest struct {
	StartDate     string   `json:"start_date"`
	Periods       *int     `json:"periods"`
	Seasonality   string   `json:"seasonality"`
	TrendStrength *float64 `json:"trend_strength"`
	NoiseLevel    *float64 `json:"noise_level"`
	Seed          *int64   `json:"seed,omitempty"`
}

// GenerateDatasetResponse reports the outcome of a generate call.
type GenerateDatasetResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	RowCount int    `json:"row_count"`
}

// DatasetHandler serves the dataset generation, upload, download and
// preview-chart routes.
type DatasetHandler struct {
	datasetService *services.DatasetService
}

// NewDatasetHandler constructs a DatasetHandler with its service dependency.
func NewDatasetHandler(datasetService *services.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// GenerateDataset handles POST /v1/dataset/generate.
func (h *DatasetHandler) GenerateDataset(w http.ResponseWriter, r *http.Request) {
	var req GenerateDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	cfg, err := req.toConfig()
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	dataset, err := h.datasetService.Generate(cfg, req.Seed)
	if err != nil {
		log.Println("Error generating dataset:", err)
		WriteCoreError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, GenerateDatasetResponse{
		Status:   "success",
		Message:  "Dataset generated successfully!",
		RowCount: dataset.RowCount(),
	})
}

// DownloadDataset handles GET /v1/dataset/download with a CSV attachment.
func (h *DatasetHandler) DownloadDataset(w http.ResponseWriter, r *http.Request) {
	has, err := h.datasetService.Has()
	if err != nil {
		log.Println("Error checking for dataset:", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !has {
		WriteError(w, http.StatusNotFound, "No dataset found. Please generate one first.")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_data.csv"`)
	if err := h.datasetService.ExportCSV(w); err != nil {
		// headers already sent, all we can do is log
		log.Println("Error exporting dataset CSV:", err)
	}
}

// UploadDataset handles POST /v1/dataset/upload with a CSV body. Only column
// presence is validated.
func (h *DatasetHandler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	dataset, err := util.ReadDatasetCSV(r.Body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.datasetService.Replace(*dataset); err != nil {
		log.Println("Error storing uploaded dataset:", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteJSON(w, http.StatusOK, GenerateDatasetResponse{
		Status:   "success",
		Message:  "Dataset uploaded successfully!",
		RowCount: dataset.RowCount(),
	})
}

// PreviewChart handles GET /v1/charts/preview with an HTML line chart of the
// stored dataset.
func (h *DatasetHandler) PreviewChart(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.datasetService.Get()
	if err != nil {
		WriteError(w, http.StatusNotFound, "No dataset found. Please generate one first.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotDataset(w, *dataset); err != nil {
		log.Println("Error rendering preview chart:", err)
	}
}

// Ping handles GET /ping
func (h *DatasetHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	WriteJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (req GenerateDatasetRequest) toConfig() (models.GenerationConfig, error) {
	startDateStr := req.StartDate
	if startDateStr == "" {
		startDateStr = config.DEFAULT_START_DATE
	}
	startDate, err := time.Parse(models.DateLayout, startDateStr)
	if err != nil {
		return models.GenerationConfig{}, models.NewError(models.InvalidConfiguration,
			"invalid start_date %q (want YYYY-MM-DD)", startDateStr)
	}

	seasonalityStr := req.Seasonality
	if seasonalityStr == "" {
		seasonalityStr = config.DEFAULT_SEASONALITY
	}
	seasonality, err := models.ParseSeasonality(seasonalityStr)
	if err != nil {
		return models.GenerationConfig{}, err
	}

	cfg := models.GenerationConfig{
		StartDate:     startDate,
		Periods:       config.DEFAULT_PERIODS,
		Seasonality:   seasonality,
		TrendStrength: config.DEFAULT_TREND_STRENGTH,
		NoiseLevel:    config.DEFAULT_NOISE_LEVEL,
	}
	if req.Periods != nil {
		cfg.Periods = *req.Periods
	}
	if req.TrendStrength != nil {
		cfg.TrendStrength = *req.TrendStrength
	}
	if req.NoiseLevel != nil {
		cfg.NoiseLevel = *req.NoiseLevel
	}
	return cfg, nil
}
