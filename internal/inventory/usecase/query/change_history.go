package query

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// ChangeHistoryQuery represents the query to list a product's stock
// change audit trail
type ChangeHistoryQuery struct {
	ProductID uint
}

// ChangeHistoryHandler handles change history query
type ChangeHistoryHandler struct {
	repo domain.LedgerRepository
}

// NewChangeHistoryHandler creates a new change history handler
func NewChangeHistoryHandler(repo domain.LedgerRepository) *ChangeHistoryHandler {
	return &ChangeHistoryHandler{repo: repo}
}

// Handle executes the change history query. A product that only ever
// had its baseline set returns an empty history, not an error.
func (h *ChangeHistoryHandler) Handle(q ChangeHistoryQuery) ([]domain.InventoryChange, error) {
	if q.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	changes, err := h.repo.ChangeHistory(q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get change history: %w", err)
	}

	return changes, nil
}
