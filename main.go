package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"sf-server/config"
	"sf-server/di"
	"sf-server/generator"
	"sf-server/models"
	"sf-server/util"
)

func main() {
	var (
		generate      = flag.Bool("generate", false, "generate a dataset CSV and exit instead of serving")
		startDate     = flag.String("start_date", config.DEFAULT_START_DATE, "start date (YYYY-MM-DD)")
		periods       = flag.Int("periods", config.DEFAULT_PERIODS, "number of days to generate")
		seasonality   = flag.String("seasonality", config.DEFAULT_SEASONALITY, "seasonality pattern (weekly, monthly or yearly)")
		trendStrength = flag.Float64("trend_strength", config.DEFAULT_TREND_STRENGTH, "trend strength (0.0-1.0)")
		noiseLevel    = flag.Float64("noise_level", config.DEFAULT_NOISE_LEVEL, "noise level (0.0-1.0)")
		seed          = flag.Int64("seed", 0, "random seed (0 means time-based)")
		output        = flag.String("output", "sales_data.csv", "output CSV path")
		env           = flag.String("env", "prod", "environment (prod uses real redis)")
	)
	flag.Parse()

	if *generate {
		if err := generateToCSV(*startDate, *periods, *seasonality, *trendStrength, *noiseLevel, *seed, *output); err != nil {
			log.Fatalf("Failed to generate dataset: %v", err)
		}
		fmt.Printf("Dataset generated and saved to %s\n", *output)
		return
	}

	container := di.NewContainer(*env)

	fmt.Println("seeding default dataset!")
	if err := container.DatasetSeederService.SeedIfEmpty(); err != nil {
		log.Printf("Failed to seed default dataset: %v", err)
	}

	fmt.Println("starting server!")
	container.SalesForecastServer.Start()
}

// generateToCSV is the standalone generator mode: synthesize a dataset with
// the flag parameters and write it straight to a CSV file.
func generateToCSV(startDate string, periods int, seasonality string, trendStrength, noiseLevel float64, seed int64, output string) error {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: %w", startDate, err)
	}
	kind, err := models.ParseSeasonality(seasonality)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	synth := generator.NewSeededSynthesizer(seed)
	dataset, err := synth.GenerateDataset(models.GenerationConfig{
		StartDate:     start,
		Periods:       periods,
		Seasonality:   kind,
		TrendStrength: trendStrength,
		NoiseLevel:    noiseLevel,
	}, config.CategoryNames)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer f.Close()

	return util.WriteDatasetCSV(f, dataset)
}
