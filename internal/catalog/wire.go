//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/catalog/delivery/http"
	"github.com/tair/retail-backoffice/internal/inventory"
	invcommand "github.com/tair/retail-backoffice/internal/inventory/usecase/command"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		inventory.RepositorySet,
		invcommand.NewInitializeStockHandler,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
