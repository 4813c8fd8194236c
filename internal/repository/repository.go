// Package repository holds the transactional persistence primitives the
// inventory services are composed from. Implementations are constructed
// over either the root *gorm.DB or a transaction handle, so a service can
// run several primitives inside one transaction.
package repository

import "vendstock/internal/models"

// Inventory defines the storage operations over machines, products, and
// the stock-history ledger.
type Inventory interface {
	GetMachine(id uint) (*models.Machine, error)
	FindMachineByName(name string) (*models.Machine, error)

	GetProduct(id uint) (*models.Product, error)
	FindProductByNameAndLocation(name, stored string) (*models.Product, error)

	// UpsertProduct sets the current stock level for the (name, stored)
	// pair: an existing row has its quantity overwritten, otherwise a new
	// row is inserted. Last write wins on concurrent calls.
	UpsertProduct(name string, quantity int, stored string) (*models.Product, error)

	// DecrementQuantity atomically subtracts amount from the product's
	// quantity. It fails with ErrInsufficientStock when amount exceeds the
	// current quantity; subtracting exactly the remaining stock succeeds.
	DecrementQuantity(productID uint, amount int) (*models.Product, error)

	// AppendHistory inserts a ledger row recording the resulting quantity,
	// stamped with the current server time.
	AppendHistory(productID, machineID uint, quantity int) (*models.StockHistory, error)

	CountProductsStoredIn(machineName string) (int64, error)
}
