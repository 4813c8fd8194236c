package models

// Machine represents a physical vending machine in the system.
// Name acts as a natural key: products reference the machine they are
// stocked in by name, not by surrogate ID.
type Machine struct {
	Base
	Name     string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Location string `gorm:"size:100" json:"location"`
}
