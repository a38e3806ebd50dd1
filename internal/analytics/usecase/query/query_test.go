package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

// Mock SalesRepository backed by an in-memory sales slice and a
// product -> category name mapping
type mockSalesRepo struct {
	sales      []domain.Sale
	categories map[uint]string // product id -> category name
	categoryID map[uint]uint   // product id -> category id
}

func (m *mockSalesRepo) FindSales(rng domain.DateRange, productID, categoryID uint) ([]domain.Sale, error) {
	var result []domain.Sale
	for _, sale := range m.sales {
		if !rng.Contains(sale.SaleDate) {
			continue
		}
		if productID != 0 && sale.ProductID != productID {
			continue
		}
		if categoryID != 0 && m.categoryID[sale.ProductID] != categoryID {
			continue
		}
		result = append(result, sale)
	}
	return result, nil
}

func (m *mockSalesRepo) RevenueByCategory(rng *domain.DateRange, categoryIDs []uint) ([]domain.CategoryRevenue, error) {
	allowed := make(map[uint]bool)
	for _, id := range categoryIDs {
		allowed[id] = true
	}

	sums := make(map[string]float64)
	for _, sale := range m.sales {
		if rng != nil && !rng.Contains(sale.SaleDate) {
			continue
		}
		if len(categoryIDs) > 0 && !allowed[m.categoryID[sale.ProductID]] {
			continue
		}
		sums[m.categories[sale.ProductID]] += sale.Revenue
	}

	var rows []domain.CategoryRevenue
	for name, revenue := range sums {
		rows = append(rows, domain.CategoryRevenue{CategoryName: name, Revenue: revenue})
	}
	return rows, nil
}

func (m *mockSalesRepo) RevenueInRange(rng domain.DateRange) (float64, error) {
	var total float64
	for _, sale := range m.sales {
		if rng.Contains(sale.SaleDate) {
			total += sale.Revenue
		}
	}
	return total, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureRepo() *mockSalesRepo {
	return &mockSalesRepo{
		sales: []domain.Sale{
			{SaleID: 1, ProductID: 1, QuantitySold: 2, SaleDate: date(2023, time.June, 1), Revenue: 40},
			{SaleID: 2, ProductID: 1, QuantitySold: 1, SaleDate: date(2023, time.June, 1), Revenue: 20},
			{SaleID: 3, ProductID: 2, QuantitySold: 3, SaleDate: date(2023, time.June, 2), Revenue: 60.50},
			{SaleID: 4, ProductID: 2, QuantitySold: 1, SaleDate: date(2023, time.July, 10), Revenue: 60},
			{SaleID: 5, ProductID: 3, QuantitySold: 5, SaleDate: date(2022, time.June, 15), Revenue: 100},
		},
		categories: map[uint]string{1: "Electronics", 2: "Books", 3: "Books"},
		categoryID: map[uint]uint{1: 1, 2: 2, 3: 2},
	}
}

func june2023() domain.DateRange {
	return domain.DateRange{Start: date(2023, time.June, 1), End: date(2023, time.June, 30)}
}

func TestTotalRevenue(t *testing.T) {
	handler := NewTotalRevenueHandler(fixtureRepo())

	totals, err := handler.Handle(TotalRevenueQuery{Range: june2023()})
	require.NoError(t, err)
	assert.Equal(t, 6, totals.TotalQuantitySold)
	assert.InDelta(t, 120.50, totals.TotalRevenue, 0.001)
}

func TestTotalRevenue_ProductFilter(t *testing.T) {
	handler := NewTotalRevenueHandler(fixtureRepo())

	totals, err := handler.Handle(TotalRevenueQuery{Range: june2023(), ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, totals.TotalQuantitySold)
	assert.InDelta(t, 60, totals.TotalRevenue, 0.001)
}

func TestTotalRevenue_NoSalesIsZero(t *testing.T) {
	handler := NewTotalRevenueHandler(fixtureRepo())

	totals, err := handler.Handle(TotalRevenueQuery{
		Range: domain.DateRange{Start: date(2020, time.January, 1), End: date(2020, time.December, 31)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, totals.TotalQuantitySold)
	assert.Zero(t, totals.TotalRevenue)
}

func TestTotalRevenue_InvalidRange(t *testing.T) {
	handler := NewTotalRevenueHandler(fixtureRepo())

	_, err := handler.Handle(TotalRevenueQuery{
		Range: domain.DateRange{Start: date(2023, time.June, 30), End: date(2023, time.June, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestRevenueByBucket_Daily(t *testing.T) {
	handler := NewRevenueByBucketHandler(fixtureRepo())

	buckets, err := handler.Handle(RevenueByBucketQuery{
		TimeFrame: domain.BucketDaily,
		Range:     june2023(),
	})
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	// Ascending by date, same-day sales summed
	assert.Equal(t, "2023-06-01", buckets[0].Bucket)
	assert.InDelta(t, 60, buckets[0].Revenue, 0.001)
	assert.Equal(t, "2023-06-02", buckets[1].Bucket)
	assert.InDelta(t, 60.50, buckets[1].Revenue, 0.001)
}

func TestRevenueByBucket_MonthlyCollapsesYears(t *testing.T) {
	handler := NewRevenueByBucketHandler(fixtureRepo())

	buckets, err := handler.Handle(RevenueByBucketQuery{
		TimeFrame: domain.BucketMonthly,
		Range:     domain.DateRange{Start: date(2022, time.January, 1), End: date(2023, time.December, 31)},
	})
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	// June 2022 and June 2023 land in the same month-number bucket
	assert.Equal(t, "6", buckets[0].Bucket)
	assert.InDelta(t, 220.50, buckets[0].Revenue, 0.001)
	assert.Equal(t, "7", buckets[1].Bucket)
	assert.InDelta(t, 60, buckets[1].Revenue, 0.001)
}

func TestRevenueByBucket_Annual(t *testing.T) {
	handler := NewRevenueByBucketHandler(fixtureRepo())

	buckets, err := handler.Handle(RevenueByBucketQuery{
		TimeFrame: domain.BucketAnnual,
		Range:     domain.DateRange{Start: date(2022, time.January, 1), End: date(2023, time.December, 31)},
	})
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2022", buckets[0].Bucket)
	assert.InDelta(t, 100, buckets[0].Revenue, 0.001)
	assert.Equal(t, "2023", buckets[1].Bucket)
	assert.InDelta(t, 180.50, buckets[1].Revenue, 0.001)
}

func TestRevenueByBucket_InvalidTimeFrame(t *testing.T) {
	handler := NewRevenueByBucketHandler(fixtureRepo())

	// The named-window spelling is not a bucket granularity
	_, err := handler.Handle(RevenueByBucketQuery{
		TimeFrame: domain.TimeFrameAnnually,
		Range:     june2023(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeFrame)
}

func TestCompareCategories(t *testing.T) {
	handler := NewCompareCategoriesHandler(fixtureRepo())

	rng := june2023()
	revenues, err := handler.Handle(CompareCategoriesQuery{Range: &rng})
	require.NoError(t, err)
	require.Len(t, revenues, 2)
	assert.InDelta(t, 60, revenues["Electronics"], 0.001)
	assert.InDelta(t, 60.50, revenues["Books"], 0.001)
}

func TestCompareCategories_PairRestriction(t *testing.T) {
	handler := NewCompareCategoriesHandler(fixtureRepo())

	revenues, err := handler.Handle(CompareCategoriesQuery{CategoryIDs: []uint{2, 2}})
	require.NoError(t, err)
	require.Len(t, revenues, 1)
	assert.InDelta(t, 220.50, revenues["Books"], 0.001)
}

func TestCompareCategories_SingleIDIgnored(t *testing.T) {
	handler := NewCompareCategoriesHandler(fixtureRepo())

	// An incomplete pair does not restrict the comparison
	revenues, err := handler.Handle(CompareCategoriesQuery{CategoryIDs: []uint{2}})
	require.NoError(t, err)
	assert.Len(t, revenues, 2)
}

func TestComparePeriods(t *testing.T) {
	handler := NewComparePeriodsHandler(fixtureRepo())

	previous := domain.DateRange{Start: date(2022, time.June, 1), End: date(2022, time.June, 30)}
	comparison, err := handler.Handle(ComparePeriodsQuery{
		Period1: june2023(),
		Period2: &previous,
	})
	require.NoError(t, err)
	assert.InDelta(t, 120.50, comparison.CurrentPeriodRevenue, 0.001)
	require.NotNil(t, comparison.PreviousPeriodRevenue)
	assert.InDelta(t, 100, *comparison.PreviousPeriodRevenue, 0.001)
}

func TestComparePeriods_SecondPeriodOptional(t *testing.T) {
	handler := NewComparePeriodsHandler(fixtureRepo())

	comparison, err := handler.Handle(ComparePeriodsQuery{Period1: june2023()})
	require.NoError(t, err)
	assert.InDelta(t, 120.50, comparison.CurrentPeriodRevenue, 0.001)
	assert.Nil(t, comparison.PreviousPeriodRevenue)
}

func TestRevenueAnalysis(t *testing.T) {
	handler := NewRevenueAnalysisHandler(fixtureRepo())

	result, err := handler.Handle(RevenueAnalysisQuery{
		TimeFrame: domain.TimeFrameMonthly,
		Anchor:    date(2023, time.June, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, date(2023, time.June, 1), result.Window.Start)
	assert.InDelta(t, 120.50, result.Revenue, 0.001)
}

func TestRevenueAnalysis_CategoryFilter(t *testing.T) {
	handler := NewRevenueAnalysisHandler(fixtureRepo())

	result, err := handler.Handle(RevenueAnalysisQuery{
		TimeFrame:  domain.TimeFrameMonthly,
		CategoryID: 2,
		Anchor:     date(2023, time.June, 15),
	})
	require.NoError(t, err)
	assert.InDelta(t, 60.50, result.Revenue, 0.001)
}

func TestRevenueAnalysis_InvalidTimeFrame(t *testing.T) {
	handler := NewRevenueAnalysisHandler(fixtureRepo())

	_, err := handler.Handle(RevenueAnalysisQuery{TimeFrame: "hourly"})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeFrame)
}
