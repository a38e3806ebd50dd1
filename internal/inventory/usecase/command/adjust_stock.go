package command

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// AdjustStockCommand represents the command to replace a product's
// current stock. NewStock is an absolute value, not a delta.
type AdjustStockCommand struct {
	ProductID uint
	NewStock  int
}

// AdjustStockResult carries the updated record and its audit row
type AdjustStockResult struct {
	Inventory *domain.Inventory       `json:"inventory"`
	Change    *domain.InventoryChange `json:"inventory_change"`
}

// AdjustStockHandler handles adjust stock command
type AdjustStockHandler struct {
	repo domain.LedgerRepository
}

// NewAdjustStockHandler creates a new adjust stock handler
func NewAdjustStockHandler(repo domain.LedgerRepository) *AdjustStockHandler {
	return &AdjustStockHandler{repo: repo}
}

// Handle executes the adjust stock command
func (h *AdjustStockHandler) Handle(cmd AdjustStockCommand) (*AdjustStockResult, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	if cmd.NewStock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	inventory, change, err := h.repo.AdjustStock(cmd.ProductID, cmd.NewStock)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return &AdjustStockResult{Inventory: inventory, Change: change}, nil
}
