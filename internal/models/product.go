package models

// Product represents a stock entry for an item at a specific machine.
// The pair (Name, Stored) is the business-level identity used for
// stock-or-restock upserts; the store does not enforce its uniqueness,
// the service layer does. Quantity never goes below zero.
type Product struct {
	Base
	Name     string `gorm:"size:50;not null;index:idx_products_name_stored" json:"name"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"`
	Stored   string `gorm:"size:50;not null;index:idx_products_name_stored;index" json:"stored"`
}
