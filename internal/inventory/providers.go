package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
	"github.com/tair/retail-backoffice/internal/inventory/repository"
	"github.com/tair/retail-backoffice/internal/inventory/usecase/command"
	"github.com/tair/retail-backoffice/internal/inventory/usecase/query"
)

// ProvideLedgerRepository provides the stock ledger repository with tracing
func ProvideLedgerRepository(db *gorm.DB) domain.LedgerRepository {
	return repository.NewGormLedgerRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideLedgerRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewInitializeStockHandler,
	command.NewAdjustStockHandler,
	query.NewGetStockHandler,
	query.NewChangeHistoryHandler,
)
