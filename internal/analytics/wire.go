//go:build wireinject
// +build wireinject

package analytics

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/analytics/delivery/http"
	"github.com/tair/retail-backoffice/internal/analytics/monitor"
	"github.com/tair/retail-backoffice/internal/inventory"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, lookup monitor.ProductLookup) (*http.AnalyticsHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		MonitorSet,
		inventory.RepositorySet,
		http.NewAnalyticsHandlerWithDI,
	)
	return nil, nil
}
