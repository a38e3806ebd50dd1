package query

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

// TotalRevenueQuery represents the query to sum revenue and quantity
// over a date range, optionally restricted to one product or category
type TotalRevenueQuery struct {
	Range      domain.DateRange
	ProductID  uint
	CategoryID uint
}

// TotalRevenueHandler handles total revenue query
type TotalRevenueHandler struct {
	repo domain.SalesRepository
}

// NewTotalRevenueHandler creates a new total revenue handler
func NewTotalRevenueHandler(repo domain.SalesRepository) *TotalRevenueHandler {
	return &TotalRevenueHandler{repo: repo}
}

// Handle executes the total revenue query. No matching sales is not an
// error; the totals are simply zero.
func (h *TotalRevenueHandler) Handle(q TotalRevenueQuery) (*domain.SalesTotals, error) {
	if err := q.Range.Validate(); err != nil {
		return nil, err
	}

	sales, err := h.repo.FindSales(q.Range, q.ProductID, q.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	totals := &domain.SalesTotals{}
	for _, sale := range sales {
		totals.TotalQuantitySold += sale.QuantitySold
		totals.TotalRevenue += sale.Revenue
	}

	return totals, nil
}
