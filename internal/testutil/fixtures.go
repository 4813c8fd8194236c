package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"vendstock/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestMachine creates a machine with a unique name.
func CreateTestMachine(t *testing.T, db *gorm.DB) *models.Machine {
	t.Helper()
	name := fmt.Sprintf("Machine %d", nextID())
	return CreateTestMachineNamed(t, db, name, "Test Location")
}

// CreateTestMachineNamed creates a machine with the given name and location.
func CreateTestMachineNamed(t *testing.T, db *gorm.DB, name, location string) *models.Machine {
	t.Helper()

	machine := &models.Machine{
		Name:     name,
		Location: location,
	}
	if err := db.Create(machine).Error; err != nil {
		t.Fatalf("failed to create test machine: %v", err)
	}
	return machine
}

// CreateTestProduct creates a product stocked in the named machine.
func CreateTestProduct(t *testing.T, db *gorm.DB, name string, quantity int, stored string) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:     name,
		Quantity: quantity,
		Stored:   stored,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestHistory appends a ledger row with the given recorded time.
func CreateTestHistory(t *testing.T, db *gorm.DB, productID, machineID uint, quantity int, recordedAt time.Time) *models.StockHistory {
	t.Helper()

	entry := &models.StockHistory{
		ProductID: productID,
		MachineID: machineID,
		Quantity:  quantity,
		Timestamp: recordedAt,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test history entry: %v", err)
	}
	return entry
}
