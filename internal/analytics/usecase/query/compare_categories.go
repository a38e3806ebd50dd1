package query

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

// CompareCategoriesQuery represents the query to compare summed revenue
// across categories. A pair of category ids restricts the comparison to
// those two; otherwise every category with at least one sale appears.
type CompareCategoriesQuery struct {
	Range       *domain.DateRange
	CategoryIDs []uint
}

// CompareCategoriesHandler handles compare categories query
type CompareCategoriesHandler struct {
	repo domain.SalesRepository
}

// NewCompareCategoriesHandler creates a new compare categories handler
func NewCompareCategoriesHandler(repo domain.SalesRepository) *CompareCategoriesHandler {
	return &CompareCategoriesHandler{repo: repo}
}

// Handle executes the compare categories query. Category names are
// unique, so the result maps name to summed revenue.
func (h *CompareCategoriesHandler) Handle(q CompareCategoriesQuery) (map[string]float64, error) {
	if q.Range != nil {
		if err := q.Range.Validate(); err != nil {
			return nil, err
		}
	}

	// The restriction only applies when a full pair is supplied,
	// matching the comparison endpoint's historical behavior
	var categoryIDs []uint
	if len(q.CategoryIDs) == 2 {
		categoryIDs = q.CategoryIDs
	}

	rows, err := h.repo.RevenueByCategory(q.Range, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to compare categories: %w", err)
	}

	revenues := make(map[string]float64, len(rows))
	for _, row := range rows {
		revenues[row.CategoryName] = row.Revenue
	}

	return revenues, nil
}
