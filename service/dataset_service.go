package services

import (
	"io"
	"log"
	"time"

	"sf-server/config"
	"sf-server/dao/redis"
	"sf-server/generator"
	"sf-server/models"
	"sf-server/util"
)

// DatasetService generates sales datasets and persists them through the DAO.
type DatasetService struct {
	datasetDao *redis.RedisDatasetDAO
}

// NewDatasetService constructs a new DatasetService with its DAO dependency.
func NewDatasetService(datasetDao *redis.RedisDatasetDAO) *DatasetService {
	return &DatasetService{datasetDao: datasetDao}
}

// Generate synthesizes a dataset for the config with the canonical category
// names, stores it, and returns it. Each call gets its own random source;
// pass a non-nil seed to make the run reproducible.
func (ds *DatasetService) Generate(cfg models.GenerationConfig, seed *int64) (*models.Dataset, error) {
	synth := generator.NewSeededSynthesizer(ds.seedFor(seed))

	dataset, err := synth.GenerateDataset(cfg, config.CategoryNames)
	if err != nil {
		return nil, err
	}

	if err := ds.datasetDao.SaveDataset(dataset); err != nil {
		return nil, err
	}
	log.Printf("[DatasetService] Generated and stored dataset: %d rows, seasonality=%s",
		dataset.RowCount(), cfg.Seasonality)
	return &dataset, nil
}

// Get returns the stored dataset.
func (ds *DatasetService) Get() (*models.Dataset, error) {
	return ds.datasetDao.GetDataset()
}

// Has reports whether a dataset has been stored.
func (ds *DatasetService) Has() (bool, error) {
	return ds.datasetDao.HasDataset()
}

// Replace stores an externally supplied dataset (the upload path).
func (ds *DatasetService) Replace(dataset models.Dataset) error {
	if err := ds.datasetDao.SaveDataset(dataset); err != nil {
		return err
	}
	log.Printf("[DatasetService] Replaced dataset with uploaded table: %d rows", dataset.RowCount())
	return nil
}

// ExportCSV writes the stored dataset as CSV.
func (ds *DatasetService) ExportCSV(w io.Writer) error {
	dataset, err := ds.datasetDao.GetDataset()
	if err != nil {
		return err
	}
	return util.WriteDatasetCSV(w, *dataset)
}

func (ds *DatasetService) seedFor(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
