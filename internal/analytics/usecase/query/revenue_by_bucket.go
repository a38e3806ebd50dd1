package query

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

// RevenueByBucketQuery represents the query to group revenue into
// calendar buckets over a date range
type RevenueByBucketQuery struct {
	TimeFrame string
	Range     domain.DateRange
}

// RevenueByBucketHandler handles revenue by bucket query
type RevenueByBucketHandler struct {
	repo domain.SalesRepository
}

// NewRevenueByBucketHandler creates a new revenue by bucket handler
func NewRevenueByBucketHandler(repo domain.SalesRepository) *RevenueByBucketHandler {
	return &RevenueByBucketHandler{repo: repo}
}

// Handle executes the revenue by bucket query. Bucket keys are the
// calendar date for daily, the month number for monthly, and the year
// for annual grouping. Monthly and annual keys deliberately do not
// carry the other component, so August 2022 and August 2023 share a
// monthly bucket.
//
// TODO: bucket monthly by (year, month) once the reporting UI can
// render compound keys.
func (h *RevenueByBucketHandler) Handle(q RevenueByBucketQuery) ([]domain.BucketRevenue, error) {
	switch q.TimeFrame {
	case domain.BucketDaily, domain.BucketMonthly, domain.BucketAnnual:
	default:
		return nil, domain.ErrInvalidTimeFrame
	}

	if err := q.Range.Validate(); err != nil {
		return nil, err
	}

	sales, err := h.repo.FindSales(q.Range, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	switch q.TimeFrame {
	case domain.BucketDaily:
		return bucketByDay(sales), nil
	case domain.BucketMonthly:
		return bucketByNumber(sales, func(s domain.Sale) int { return int(s.SaleDate.Month()) }), nil
	default:
		return bucketByNumber(sales, func(s domain.Sale) int { return s.SaleDate.Year() }), nil
	}
}

func bucketByDay(sales []domain.Sale) []domain.BucketRevenue {
	sums := make(map[string]float64)
	for _, sale := range sales {
		sums[sale.SaleDate.Format("2006-01-02")] += sale.Revenue
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	// ISO dates sort chronologically as strings
	sort.Strings(keys)

	buckets := make([]domain.BucketRevenue, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, domain.BucketRevenue{Bucket: key, Revenue: sums[key]})
	}
	return buckets
}

func bucketByNumber(sales []domain.Sale, keyOf func(domain.Sale) int) []domain.BucketRevenue {
	sums := make(map[int]float64)
	for _, sale := range sales {
		sums[keyOf(sale)] += sale.Revenue
	}

	keys := make([]int, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	buckets := make([]domain.BucketRevenue, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, domain.BucketRevenue{Bucket: strconv.Itoa(key), Revenue: sums[key]})
	}
	return buckets
}
