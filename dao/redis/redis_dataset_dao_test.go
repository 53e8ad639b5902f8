package redis

import (
	"context"
	"testing"
	"time"

	"sf-server/db"
	"sf-server/models"
)

func testDataset(rows int) models.Dataset {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	values := make([]float64, rows)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	return models.Dataset{
		Sales: models.NewTimeSeries(start, values),
		Categories: []models.CategorySeries{
			{Name: "Electronics", Series: models.NewTimeSeries(start, values)},
		},
	}
}

func TestRedisDatasetDAO_SaveAndGetDataset(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisDatasetDAO(mockClient)

	// Act
	err := dao.SaveDataset(testDataset(10))

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	stored, err := dao.GetDataset()
	if err != nil {
		t.Fatalf("Expected dataset to be stored, got error: %v", err)
	}

	if stored.RowCount() != 10 {
		t.Errorf("Expected 10 rows, got %d", stored.RowCount())
	}
	if len(stored.Categories) != 1 || stored.Categories[0].Name != "Electronics" {
		t.Errorf("Expected Electronics category, got %+v", stored.Categories)
	}
	if !stored.Sales.Dates[0].Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected first date: %v", stored.Sales.Dates[0])
	}
}

func TestRedisDatasetDAO_GetDataset_Missing(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisDatasetDAO(mockClient)

	// Act
	_, err := dao.GetDataset()

	// Assert
	if err == nil {
		t.Fatal("Expected error for missing dataset, got nil")
	}
}

func TestRedisDatasetDAO_HasAndDeleteDataset(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisDatasetDAO(mockClient)

	has, err := dao.HasDataset()
	if err != nil {
		t.Fatalf("HasDataset failed: %v", err)
	}
	if has {
		t.Error("Expected no dataset yet")
	}

	if err := dao.SaveDataset(testDataset(5)); err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}

	has, err = dao.HasDataset()
	if err != nil {
		t.Fatalf("HasDataset failed: %v", err)
	}
	if !has {
		t.Error("Expected dataset to exist after save")
	}

	if err := dao.DeleteDataset(); err != nil {
		t.Fatalf("DeleteDataset failed: %v", err)
	}

	has, err = dao.HasDataset()
	if err != nil {
		t.Fatalf("HasDataset failed: %v", err)
	}
	if has {
		t.Error("Expected dataset to be gone after delete")
	}
}
