package domain

import (
	"errors"
	"time"
)

// Inventory is the authoritative current-stock record, one per product
type Inventory struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProductID    uint      `json:"product_id" gorm:"uniqueIndex;not null"`
	CurrentStock int       `json:"current_stock" gorm:"not null"`
	LastUpdated  time.Time `json:"last_updated" gorm:"not null"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventories"
}

// InventoryChange is one immutable audit record of a stock mutation.
// Rows are only ever appended, never updated or deleted.
type InventoryChange struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"not null;index"`
	OldStock   int       `json:"old_stock" gorm:"not null"`
	NewStock   int       `json:"new_stock" gorm:"not null"`
	ChangeDate time.Time `json:"change_date" gorm:"not null"`
}

// TableName specifies the table name
func (InventoryChange) TableName() string {
	return "inventory_changes"
}

// LowStockItem is one row of a low-stock scan
type LowStockItem struct {
	ProductID    uint `json:"product_id"`
	CurrentStock int  `json:"current_stock"`
}

var (
	// ErrNotFound indicates no ledger record exists for the product
	ErrNotFound = errors.New("product not found in inventory")
	// ErrAlreadyExists indicates the product already has a ledger record
	ErrAlreadyExists = errors.New("inventory record already exists for product")
)

// LedgerRepository defines the contract for stock ledger data access.
//
// Initialize and AdjustStock are atomic per product: concurrent mutations
// on the same product id are serialized so that every change row's
// old_stock matches the stock committed immediately before it.
type LedgerRepository interface {
	Initialize(productID uint, openingStock int) (*Inventory, error)
	AdjustStock(productID uint, newStock int) (*Inventory, *InventoryChange, error)
	FindByProductID(productID uint) (*Inventory, error)
	FindLowStock(threshold int) ([]LowStockItem, error)
	ChangeHistory(productID uint) ([]InventoryChange, error)
}
