package models

import "time"

// StockHistory is an append-only ledger entry recording the quantity a
// product reached at a point in time, for a product/machine pair.
// Quantity is the resulting stock level after the event, not a delta.
// Rows are never updated or deleted by normal operation.
type StockHistory struct {
	Base
	ProductID uint      `gorm:"not null;index:idx_stock_histories_machine_product" json:"product_id"`
	MachineID uint      `gorm:"not null;index:idx_stock_histories_machine_product,priority:1" json:"machine_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Timestamp time.Time `gorm:"column:recorded_at;not null;index" json:"timestamp"`
}
