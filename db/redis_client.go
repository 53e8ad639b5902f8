package db

import "context"

// RedisClient defines the key-value operations available to the DAO layer.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Exists(key string) (bool, error)
	GetContext() context.Context
	Ping() error
}
