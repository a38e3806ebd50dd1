package monitor

import (
	"context"
	"fmt"

	invquery "github.com/tair/retail-backoffice/internal/inventory/usecase/query"
	"github.com/tair/retail-backoffice/kafka"
	"github.com/tair/retail-backoffice/pkg/logger"
)

// ProductLookup resolves a product id to its display name. ok is false
// when no such product exists in the catalog.
type ProductLookup interface {
	ProductName(ctx context.Context, productID uint) (name string, ok bool, err error)
}

// AlertPublisher publishes low stock alert events
type AlertPublisher interface {
	PublishLowStockAlert(ctx context.Context, event kafka.LowStockAlertEvent) error
}

// LowStockAlert is one human-readable low stock entry
type LowStockAlert struct {
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
}

// LowStockMonitor composes the ledger's low-stock scan with the catalog
// product name lookup
type LowStockMonitor struct {
	lowStock  *invquery.ListLowStockHandler
	lookup    ProductLookup
	publisher AlertPublisher
}

// NewLowStockMonitor creates a new low stock monitor
func NewLowStockMonitor(lowStock *invquery.ListLowStockHandler, lookup ProductLookup) *LowStockMonitor {
	return &LowStockMonitor{lowStock: lowStock, lookup: lookup}
}

// SetPublisher attaches an optional alert publisher
func (m *LowStockMonitor) SetPublisher(publisher AlertPublisher) {
	m.publisher = publisher
}

// ScanLowStock reports every product at or below the threshold with its
// catalog name. Ledger entries whose product no longer resolves in the
// catalog are skipped, not fatal: a stale ledger row must not take the
// whole report down.
func (m *LowStockMonitor) ScanLowStock(ctx context.Context, threshold int) ([]LowStockAlert, error) {
	items, err := m.lowStock.Handle(invquery.ListLowStockQuery{Threshold: threshold})
	if err != nil {
		return nil, fmt.Errorf("failed to scan low stock: %w", err)
	}

	alerts := make([]LowStockAlert, 0, len(items))
	for _, item := range items {
		name, ok, err := m.lookup.ProductName(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d: %w", item.ProductID, err)
		}
		if !ok {
			logger.Warn(ctx).
				Uint("product_id", item.ProductID).
				Msg("Skipping low stock entry for unknown product")
			continue
		}

		alert := LowStockAlert{
			ProductID:    item.ProductID,
			ProductName:  name,
			CurrentStock: item.CurrentStock,
		}
		alerts = append(alerts, alert)

		if m.publisher != nil {
			event := kafka.LowStockAlertEvent{
				ProductID:    alert.ProductID,
				ProductName:  alert.ProductName,
				CurrentStock: alert.CurrentStock,
				Threshold:    threshold,
			}
			if err := m.publisher.PublishLowStockAlert(ctx, event); err != nil {
				// Alerts are best effort; the report itself already stands
				logger.Warn(ctx).Err(err).
					Uint("product_id", alert.ProductID).
					Msg("Failed to publish low stock alert")
			}
		}
	}

	return alerts, nil
}
