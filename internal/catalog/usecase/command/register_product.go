package command

import (
	"fmt"

	"github.com/tair/retail-backoffice/internal/catalog/domain"
	invdomain "github.com/tair/retail-backoffice/internal/inventory/domain"
	invcommand "github.com/tair/retail-backoffice/internal/inventory/usecase/command"
)

// RegisterProductCommand represents the command to register a product
// together with its opening stock
type RegisterProductCommand struct {
	Name         string
	CategoryID   uint
	VendorID     uint
	Price        float64
	OpeningStock int
}

// RegisterProductResult carries the created product and its baseline
// ledger record
type RegisterProductResult struct {
	Product   *domain.Product      `json:"product"`
	Inventory *invdomain.Inventory `json:"inventory"`
}

// RegisterProductHandler handles register product command
type RegisterProductHandler struct {
	repo            domain.CatalogRepository
	initializeStock *invcommand.InitializeStockHandler
}

// NewRegisterProductHandler creates a new register product handler
func NewRegisterProductHandler(repo domain.CatalogRepository, initializeStock *invcommand.InitializeStockHandler) *RegisterProductHandler {
	return &RegisterProductHandler{repo: repo, initializeStock: initializeStock}
}

// Handle executes the register product command. The catalog insert and
// the ledger baseline are two separate writes: a ledger failure leaves
// the product registered without stock, which AdjustStock later reports
// as not found until the baseline is created.
func (h *RegisterProductHandler) Handle(cmd RegisterProductCommand) (*RegisterProductResult, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	product := &domain.Product{
		Name:       cmd.Name,
		CategoryID: cmd.CategoryID,
		VendorID:   cmd.VendorID,
		Price:      cmd.Price,
	}
	if err := h.repo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	inventory, err := h.initializeStock.Handle(invcommand.InitializeStockCommand{
		ProductID:    product.ProductID,
		OpeningStock: cmd.OpeningStock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stock for product %d: %w", product.ProductID, err)
	}

	return &RegisterProductResult{Product: product, Inventory: inventory}, nil
}
