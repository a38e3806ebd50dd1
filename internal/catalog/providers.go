package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/catalog/domain"
	"github.com/tair/retail-backoffice/internal/catalog/repository"
	"github.com/tair/retail-backoffice/internal/catalog/usecase/command"
	"github.com/tair/retail-backoffice/internal/catalog/usecase/query"
)

// ProvideCatalogRepository provides the catalog repository with tracing
func ProvideCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return repository.NewGormCatalogRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewRegisterProductHandler,
	query.NewGetProductHandler,
)
