package command

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// InitializeStockCommand represents the command to create a product's
// baseline ledger record
type InitializeStockCommand struct {
	ProductID    uint
	OpeningStock int
}

// InitializeStockHandler handles initialize stock command
type InitializeStockHandler struct {
	repo domain.LedgerRepository
}

// NewInitializeStockHandler creates a new initialize stock handler
func NewInitializeStockHandler(repo domain.LedgerRepository) *InitializeStockHandler {
	return &InitializeStockHandler{repo: repo}
}

// Handle executes the initialize stock command
func (h *InitializeStockHandler) Handle(cmd InitializeStockCommand) (*domain.Inventory, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	if cmd.OpeningStock < 0 {
		return nil, fmt.Errorf("opening stock cannot be negative")
	}

	inventory, err := h.repo.Initialize(cmd.ProductID, cmd.OpeningStock)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stock: %w", err)
	}

	return inventory, nil
}
