package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DatasetRoutes is the subset of DatasetHandler the router wires up.
type DatasetRoutes interface {
	GenerateDataset(w http.ResponseWriter, r *http.Request)
	DownloadDataset(w http.ResponseWriter, r *http.Request)
	UploadDataset(w http.ResponseWriter, r *http.Request)
	PreviewChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// ForecastRoutes is the subset of ForecastHandler the router wires up.
type ForecastRoutes interface {
	Forecast(w http.ResponseWriter, r *http.Request)
	ForecastChart(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	datasetHandler  DatasetRoutes
	forecastHandler ForecastRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	datasetHandler DatasetRoutes,
	forecastHandler ForecastRoutes,
	router *mux.Router) *Router {
	return &Router{
		datasetHandler:  datasetHandler,
		forecastHandler: forecastHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a JSON body: {start_date, periods, seasonality, trend_strength, noise_level, seed?}
	r.router.HandleFunc("/v1/dataset/generate", r.datasetHandler.GenerateDataset).Methods("POST")
	r.router.HandleFunc("/v1/dataset/download", r.datasetHandler.DownloadDataset).Methods("GET")
	r.router.HandleFunc("/v1/dataset/upload", r.datasetHandler.UploadDataset).Methods("POST")

	// expects a JSON body: {forecast_periods}
	r.router.HandleFunc("/v1/forecast", r.forecastHandler.Forecast).Methods("POST")

	r.router.HandleFunc("/v1/charts/preview", r.datasetHandler.PreviewChart).Methods("GET")
	// expects ?periods={horizon(int)}
	r.router.HandleFunc("/v1/charts/forecast", r.forecastHandler.ForecastChart).Methods("GET")

	r.router.HandleFunc("/ping", r.datasetHandler.Ping).Methods("GET")
}
