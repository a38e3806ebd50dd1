package query

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

// ComparePeriodsQuery represents the query to sum revenue over one
// period and optionally a second period for comparison
type ComparePeriodsQuery struct {
	Period1 domain.DateRange
	Period2 *domain.DateRange
}

// ComparePeriodsHandler handles compare periods query
type ComparePeriodsHandler struct {
	repo domain.SalesRepository
}

// NewComparePeriodsHandler creates a new compare periods handler
func NewComparePeriodsHandler(repo domain.SalesRepository) *ComparePeriodsHandler {
	return &ComparePeriodsHandler{repo: repo}
}

// Handle executes the compare periods query
func (h *ComparePeriodsHandler) Handle(q ComparePeriodsQuery) (*domain.PeriodComparison, error) {
	if err := q.Period1.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.RevenueInRange(q.Period1)
	if err != nil {
		return nil, fmt.Errorf("failed to sum period revenue: %w", err)
	}

	comparison := &domain.PeriodComparison{CurrentPeriodRevenue: current}

	if q.Period2 != nil {
		if err := q.Period2.Validate(); err != nil {
			return nil, err
		}
		previous, err := h.repo.RevenueInRange(*q.Period2)
		if err != nil {
			return nil, fmt.Errorf("failed to sum previous period revenue: %w", err)
		}
		comparison.PreviousPeriodRevenue = &previous
	}

	return comparison, nil
}
