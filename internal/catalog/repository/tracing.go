package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with tracing
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// CreateProductWithContext records a span around the product insert
func (r *GormCatalogRepositoryWithTracing) CreateProductWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.CreateProduct",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Int("product.category_id", int(product.CategoryID)),
		),
	)
	defer span.End()

	if err := r.GormCatalogRepository.CreateProduct(product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ProductID)))
	return nil
}

// FindProductByIDWithContext records a span around the product read
func (r *GormCatalogRepositoryWithTracing) FindProductByIDWithContext(ctx context.Context, productID uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindProductByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	product, err := r.GormCatalogRepository.FindProductByID(productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return product, nil
}
