package config

import "os"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Server config
const SERVER_ADDRESS = ":8080"

// Dataset store keys
const DATASET_KEY_V1 = "sales_dataset_v1"

// Generation defaults (mirror the request form defaults)
const DEFAULT_START_DATE = "2023-01-01"
const DEFAULT_PERIODS = 365
const DEFAULT_SEASONALITY = "weekly"
const DEFAULT_TREND_STRENGTH = 0.5
const DEFAULT_NOISE_LEVEL = 0.2

// Forecast defaults
const DEFAULT_FORECAST_PERIODS = 30

// CategoryNames are the canonical secondary series derived from the
// primary sales series.
var CategoryNames = []string{"Electronics", "Clothing", "Food", "Home Goods"}

// RedisAddress returns the redis address, honoring the REDIS_ADDRESS
// env var for local runs outside docker.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// ServerAddress returns the listen address, honoring SERVER_ADDRESS.
func ServerAddress() string {
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		return addr
	}
	return SERVER_ADDRESS
}
