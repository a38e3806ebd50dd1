package query

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// ListLowStockQuery represents the query to list products at or below a
// stock threshold. Any threshold is valid, including negative ones.
type ListLowStockQuery struct {
	Threshold int
}

// ListLowStockHandler handles list low stock query
type ListLowStockHandler struct {
	repo domain.LedgerRepository
}

// NewListLowStockHandler creates a new list low stock handler
func NewListLowStockHandler(repo domain.LedgerRepository) *ListLowStockHandler {
	return &ListLowStockHandler{repo: repo}
}

// Handle executes the list low stock query
func (h *ListLowStockHandler) Handle(q ListLowStockQuery) ([]domain.LowStockItem, error) {
	items, err := h.repo.FindLowStock(q.Threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock: %w", err)
	}

	return items, nil
}
