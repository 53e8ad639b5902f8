package services

import (
	"log"
	"time"

	"sf-server/config"
	"sf-server/models"
)

// DatasetSeederService makes sure the service starts with a dataset, so the
// forecast and chart routes have something to serve before the first
// generate call. It never overwrites an existing dataset.
type DatasetSeederService struct {
	datasetService *DatasetService
}

// NewDatasetSeederService constructs a new seeder with its dependency.
func NewDatasetSeederService(datasetService *DatasetService) *DatasetSeederService {
	return &DatasetSeederService{datasetService: datasetService}
}

// SeedIfEmpty generates a dataset with the default parameters when no
// dataset is stored yet.
func (s *DatasetSeederService) SeedIfEmpty() error {
	has, err := s.datasetService.Has()
	if err != nil {
		return err
	}
	if has {
		log.Println("[DatasetSeederService] Dataset already present, skipping seed.")
		return nil
	}

	start, err := time.Parse(models.DateLayout, config.DEFAULT_START_DATE)
	if err != nil {
		return err
	}

	cfg := models.GenerationConfig{
		StartDate:     start,
		Periods:       config.DEFAULT_PERIODS,
		Seasonality:   models.Seasonality(config.DEFAULT_SEASONALITY),
		TrendStrength: config.DEFAULT_TREND_STRENGTH,
		NoiseLevel:    config.DEFAULT_NOISE_LEVEL,
	}

	if _, err := s.datasetService.Generate(cfg, nil); err != nil {
		return err
	}
	log.Println("[DatasetSeederService] Seeded default dataset.")
	return nil
}
