package redis

import (
	"encoding/json"
	"fmt"
	"log"

	"sf-server/config"
	"sf-server/db"
	"sf-server/models"
)

// RedisDatasetDAO persists the generated sales dataset in Redis. The dataset
// is the single shared resource of the service; reads and writes go through
// whole-value Set/Get so concurrent requests never observe a partial table.
type RedisDatasetDAO struct {
	client db.RedisClient
}

// NewRedisDatasetDAO initializes a RedisDatasetDAO with the Redis client.
func NewRedisDatasetDAO(client db.RedisClient) *RedisDatasetDAO {
	return &RedisDatasetDAO{client: client}
}

// SaveDataset stores the dataset as JSON under the versioned dataset key.
func (dao *RedisDatasetDAO) SaveDataset(ds models.Dataset) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := dao.client.Set(config.DATASET_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set dataset in redis: %w", err)
	}
	log.Printf("[RedisDatasetDAO] Saved dataset with %d rows", ds.RowCount())
	return nil
}

// GetDataset retrieves the stored dataset, or an error when none exists.
func (dao *RedisDatasetDAO) GetDataset() (*models.Dataset, error) {
	str, err := dao.client.Get(config.DATASET_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset from redis: %w", err)
	}
	var ds models.Dataset
	if err := json.Unmarshal([]byte(str), &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset JSON: %w", err)
	}
	return &ds, nil
}

// HasDataset reports whether a dataset has been stored.
func (dao *RedisDatasetDAO) HasDataset() (bool, error) {
	exists, err := dao.client.Exists(config.DATASET_KEY_V1)
	if err != nil {
		return false, fmt.Errorf("failed to check dataset key: %w", err)
	}
	return exists, nil
}

// DeleteDataset removes the stored dataset.
func (dao *RedisDatasetDAO) DeleteDataset() error {
	if err := dao.client.Del(config.DATASET_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete dataset key %s: %w", config.DATASET_KEY_V1, err)
	}
	log.Printf("[RedisDatasetDAO] Deleted dataset %s", config.DATASET_KEY_V1)
	return nil
}
