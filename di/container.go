package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"sf-server/config"
	"sf-server/dao/redis"
	"sf-server/db"
	"sf-server/forecast"
	"sf-server/server"
	"sf-server/server/handlers"
	services "sf-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient          db.RedisClient
	RedisDatasetDao      *redis.RedisDatasetDAO
	Forecaster           *forecast.Forecaster
	DatasetService       *services.DatasetService
	ForecastService      *services.ForecastService
	DatasetSeederService *services.DatasetSeederService
	DatasetHandler       *handlers.DatasetHandler
	ForecastHandler      *handlers.ForecastHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	SalesForecastServer  *server.SalesForecastHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client - in-memory mock outside prod
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewStoreRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize dataset DAO
	redisDatasetDao := redis.NewRedisDatasetDAO(redisClient)

	// Initialize the forecaster with the fixed ARIMA(5,1,0) estimator
	forecaster := forecast.NewDefaultForecaster()

	// Initialize service layer
	datasetService := services.NewDatasetService(redisDatasetDao)
	forecastService := services.NewForecastService(redisDatasetDao, forecaster)
	datasetSeederService := services.NewDatasetSeederService(datasetService)

	// Initialize handlers
	datasetHandler := handlers.NewDatasetHandler(datasetService)
	forecastHandler := handlers.NewForecastHandler(forecastService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(datasetHandler, forecastHandler, muxRouter)

	// Initialize the sales forecast server
	salesForecastServer := server.NewSalesForecastHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		RedisClient:          redisClient,
		RedisDatasetDao:      redisDatasetDao,
		Forecaster:           forecaster,
		DatasetService:       datasetService,
		ForecastService:      forecastService,
		DatasetSeederService: datasetSeederService,
		DatasetHandler:       datasetHandler,
		ForecastHandler:      forecastHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		SalesForecastServer:  salesForecastServer,
	}
}
