package query

import (
	"fmt"
	"time"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

// RevenueAnalysisQuery represents the query to sum revenue over a named
// time window ending at the anchor date, optionally per category. A
// zero anchor means today.
type RevenueAnalysisQuery struct {
	TimeFrame  string
	CategoryID uint
	Anchor     time.Time
}

// RevenueAnalysisResult carries the resolved window alongside the sum
type RevenueAnalysisResult struct {
	TimeFrame  string           `json:"time_frame"`
	CategoryID uint             `json:"category_id,omitempty"`
	Window     domain.DateRange `json:"window"`
	Revenue    float64          `json:"revenue"`
}

// RevenueAnalysisHandler handles revenue analysis query
type RevenueAnalysisHandler struct {
	repo domain.SalesRepository
}

// NewRevenueAnalysisHandler creates a new revenue analysis handler
func NewRevenueAnalysisHandler(repo domain.SalesRepository) *RevenueAnalysisHandler {
	return &RevenueAnalysisHandler{repo: repo}
}

// Handle executes the revenue analysis query
func (h *RevenueAnalysisHandler) Handle(q RevenueAnalysisQuery) (*RevenueAnalysisResult, error) {
	anchor := q.Anchor
	if anchor.IsZero() {
		anchor = time.Now()
	}

	window, err := domain.ResolveNamedWindow(q.TimeFrame, anchor)
	if err != nil {
		return nil, err
	}

	sales, err := h.repo.FindSales(window, 0, q.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	result := &RevenueAnalysisResult{
		TimeFrame:  q.TimeFrame,
		CategoryID: q.CategoryID,
		Window:     window,
	}
	for _, sale := range sales {
		result.Revenue += sale.Revenue
	}

	return result, nil
}
