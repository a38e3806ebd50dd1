package query

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// GetStockQuery represents the query to get a product's current stock
type GetStockQuery struct {
	ProductID uint
}

// GetStockHandler handles get stock query
type GetStockHandler struct {
	repo domain.LedgerRepository
}

// NewGetStockHandler creates a new get stock handler
func NewGetStockHandler(repo domain.LedgerRepository) *GetStockHandler {
	return &GetStockHandler{repo: repo}
}

// Handle executes the get stock query
func (h *GetStockHandler) Handle(q GetStockQuery) (*domain.Inventory, error) {
	if q.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	inventory, err := h.repo.FindByProductID(q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}

	return inventory, nil
}
