package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetSeederService_SeedIfEmpty(t *testing.T) {
	datasetService := newDatasetService()
	seeder := NewDatasetSeederService(datasetService)

	if err := seeder.SeedIfEmpty(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	stored, err := datasetService.Get()
	if err != nil {
		t.Fatalf("Expected seeded dataset, got error: %v", err)
	}
	assert.Equal(t, 365, stored.RowCount())
}

func TestDatasetSeederService_DoesNotOverwrite(t *testing.T) {
	datasetService := newDatasetService()
	seeder := NewDatasetSeederService(datasetService)

	seed := int64(5)
	original, err := datasetService.Generate(generationConfig(20), &seed)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := seeder.SeedIfEmpty(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	stored, err := datasetService.Get()
	if err != nil {
		t.Fatalf("Expected dataset, got error: %v", err)
	}
	assert.Equal(t, original.Sales.Values, stored.Sales.Values, "seeder must not clobber an existing dataset")
}
