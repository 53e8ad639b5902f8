package services

import (
	"errors"
	"log"

	"sf-server/dao/redis"
	"sf-server/forecast"
	"sf-server/models"
)

// ErrNoDataset is returned when a forecast is requested before any dataset
// has been generated or uploaded.
var ErrNoDataset = errors.New("no dataset found, generate one first")

// ForecastService loads the stored dataset and forecasts its primary series.
type ForecastService struct {
	datasetDao *redis.RedisDatasetDAO
	forecaster *forecast.Forecaster
}

// NewForecastService constructs a new ForecastService with its dependencies.
func NewForecastService(datasetDao *redis.RedisDatasetDAO, forecaster *forecast.Forecaster) *ForecastService {
	return &ForecastService{
		datasetDao: datasetDao,
		forecaster: forecaster,
	}
}

// Forecast projects the stored sales series forward by horizon days and
// returns both the history (for charting) and the forecast result.
func (fs *ForecastService) Forecast(horizon int) (models.TimeSeries, *models.ForecastResult, error) {
	has, err := fs.datasetDao.HasDataset()
	if err != nil {
		return models.TimeSeries{}, nil, err
	}
	if !has {
		return models.TimeSeries{}, nil, ErrNoDataset
	}

	dataset, err := fs.datasetDao.GetDataset()
	if err != nil {
		return models.TimeSeries{}, nil, err
	}

	result, err := fs.forecaster.Forecast(dataset.Sales, horizon)
	if err != nil {
		return models.TimeSeries{}, nil, err
	}

	log.Printf("[ForecastService] Forecasted %d steps: mse=%.2f mae=%.2f",
		horizon, result.Metrics.MSE, result.Metrics.MAE)
	return dataset.Sales, result, nil
}
