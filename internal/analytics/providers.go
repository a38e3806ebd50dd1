package analytics

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
	"github.com/tair/retail-backoffice/internal/analytics/monitor"
	"github.com/tair/retail-backoffice/internal/analytics/repository"
	"github.com/tair/retail-backoffice/internal/analytics/usecase/query"
	invquery "github.com/tair/retail-backoffice/internal/inventory/usecase/query"
)

// ProvideSalesRepository provides the sales repository with tracing
func ProvideSalesRepository(db *gorm.DB) domain.SalesRepository {
	return repository.NewGormSalesRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSalesRepository,
)

var UsecaseSet = wire.NewSet(
	query.NewTotalRevenueHandler,
	query.NewRevenueByBucketHandler,
	query.NewCompareCategoriesHandler,
	query.NewComparePeriodsHandler,
	query.NewRevenueAnalysisHandler,
)

var MonitorSet = wire.NewSet(
	invquery.NewListLowStockHandler,
	monitor.NewLowStockMonitor,
)
