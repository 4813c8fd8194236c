package services

import (
	"vendstock/internal/models"
	"vendstock/internal/pagination"
)

// MachineServicer defines the contract for machine-related business logic.
type MachineServicer interface {
	RegisterMachine(name, location string) (*models.Machine, error)
	GetMachineByID(id uint) (*models.Machine, error)
	ListMachines(page pagination.PageRequest) (*pagination.PageResponse[models.Machine], error)
	UpdateMachine(id uint, name, location string) (*models.Machine, error)
	DeleteMachine(id uint) error
}

// InventoryServicer defines the contract for product stock and ledger logic.
type InventoryServicer interface {
	StockProduct(name string, quantity int, stored string) (*models.Product, error)
	PurchaseProduct(id uint, quantity int) (*models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	ListProducts(page pagination.PageRequest) (*pagination.PageResponse[models.Product], error)
	ListProductsByMachine(machineName string, page pagination.PageRequest) (*pagination.PageResponse[models.Product], error)
	UpdateProduct(id uint, name string, quantity int, stored string) (*models.Product, error)
	DeleteProduct(id uint) error
	ListStockHistory(machineID, productID uint, page pagination.PageRequest) (*pagination.PageResponse[models.StockHistory], error)
}

// AuditServicer defines the contract for recording audit events.
type AuditServicer interface {
	Log(action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
