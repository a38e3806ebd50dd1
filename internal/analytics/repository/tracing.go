package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

var tracer = otel.Tracer("sales-repository")

// GormSalesRepositoryWithTracing wraps GormSalesRepository with tracing
type GormSalesRepositoryWithTracing struct {
	*GormSalesRepository
}

// NewGormSalesRepositoryWithTracing creates a new repository with tracing
func NewGormSalesRepositoryWithTracing(db *gorm.DB) *GormSalesRepositoryWithTracing {
	return &GormSalesRepositoryWithTracing{
		GormSalesRepository: NewGormSalesRepository(db),
	}
}

// FindSalesWithContext records a span around the sales range scan
func (r *GormSalesRepositoryWithTracing) FindSalesWithContext(ctx context.Context, rng domain.DateRange, productID, categoryID uint) ([]domain.Sale, error) {
	_, span := tracer.Start(ctx, "repository.FindSales",
		trace.WithAttributes(
			attribute.String("range.start", rng.Start.Format("2006-01-02")),
			attribute.String("range.end", rng.End.Format("2006-01-02")),
			attribute.Int("filter.product_id", int(productID)),
			attribute.Int("filter.category_id", int(categoryID)),
		),
	)
	defer span.End()

	sales, err := r.GormSalesRepository.FindSales(rng, productID, categoryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(sales)))
	return sales, nil
}

// RevenueByCategoryWithContext records a span around the grouped sum
func (r *GormSalesRepositoryWithTracing) RevenueByCategoryWithContext(ctx context.Context, rng *domain.DateRange, categoryIDs []uint) ([]domain.CategoryRevenue, error) {
	_, span := tracer.Start(ctx, "repository.RevenueByCategory",
		trace.WithAttributes(
			attribute.Int("filter.category_count", len(categoryIDs)),
		),
	)
	defer span.End()

	rows, err := r.GormSalesRepository.RevenueByCategory(rng, categoryIDs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(rows)))
	return rows, nil
}

// RevenueInRangeWithContext records a span around the range sum
func (r *GormSalesRepositoryWithTracing) RevenueInRangeWithContext(ctx context.Context, rng domain.DateRange) (float64, error) {
	_, span := tracer.Start(ctx, "repository.RevenueInRange",
		trace.WithAttributes(
			attribute.String("range.start", rng.Start.Format("2006-01-02")),
			attribute.String("range.end", rng.End.Format("2006-01-02")),
		),
	)
	defer span.End()

	total, err := r.GormSalesRepository.RevenueInRange(rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Float64("result.revenue", total))
	return total, nil
}
