package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

var tracer = otel.Tracer("ledger-repository")

// GormLedgerRepositoryWithTracing wraps GormLedgerRepository with tracing
type GormLedgerRepositoryWithTracing struct {
	*GormLedgerRepository
}

// NewGormLedgerRepositoryWithTracing creates a new repository with tracing
func NewGormLedgerRepositoryWithTracing(db *gorm.DB) *GormLedgerRepositoryWithTracing {
	return &GormLedgerRepositoryWithTracing{
		GormLedgerRepository: NewGormLedgerRepository(db),
	}
}

// InitializeWithContext records a span around the baseline write
func (r *GormLedgerRepositoryWithTracing) InitializeWithContext(ctx context.Context, productID uint, openingStock int) (*domain.Inventory, error) {
	_, span := tracer.Start(ctx, "repository.Initialize",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.opening_stock", openingStock),
		),
	)
	defer span.End()

	inventory, err := r.GormLedgerRepository.Initialize(productID, openingStock)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.id", int(inventory.ID)))
	return inventory, nil
}

// AdjustStockWithContext records a span around the atomic adjust
func (r *GormLedgerRepositoryWithTracing) AdjustStockWithContext(ctx context.Context, productID uint, newStock int) (*domain.Inventory, *domain.InventoryChange, error) {
	_, span := tracer.Start(ctx, "repository.AdjustStock",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("stock.new_value", newStock),
		),
	)
	defer span.End()

	inventory, change, err := r.GormLedgerRepository.AdjustStock(productID, newStock)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	span.SetAttributes(
		attribute.Int("stock.old_value", change.OldStock),
		attribute.Int("change.id", int(change.ID)),
	)
	return inventory, change, nil
}

// FindByProductIDWithContext records a span around the stock read
func (r *GormLedgerRepositoryWithTracing) FindByProductIDWithContext(ctx context.Context, productID uint) (*domain.Inventory, error) {
	_, span := tracer.Start(ctx, "repository.FindByProductID",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
		),
	)
	defer span.End()

	inventory, err := r.GormLedgerRepository.FindByProductID(productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.current_stock", inventory.CurrentStock))
	return inventory, nil
}

// FindLowStockWithContext records a span around the low-stock scan
func (r *GormLedgerRepositoryWithTracing) FindLowStockWithContext(ctx context.Context, threshold int) ([]domain.LowStockItem, error) {
	_, span := tracer.Start(ctx, "repository.FindLowStock",
		trace.WithAttributes(
			attribute.Int("query.threshold", threshold),
		),
	)
	defer span.End()

	items, err := r.GormLedgerRepository.FindLowStock(threshold)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// ChangeHistoryWithContext records a span around the history read
func (r *GormLedgerRepositoryWithTracing) ChangeHistoryWithContext(ctx context.Context, productID uint) ([]domain.InventoryChange, error) {
	_, span := tracer.Start(ctx, "repository.ChangeHistory",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
		),
	)
	defer span.End()

	changes, err := r.GormLedgerRepository.ChangeHistory(productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(changes)))
	return changes, nil
}
