package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the back office service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// InitializeStock godoc
// @Summary Initialize product stock
// @Description Create the baseline ledger record for a new product (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,opening_stock=int} true "Baseline stock"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/inventory [post]
func (h *InventoryHandler) InitializeStockDoc() {}

// AdjustStock godoc
// @Summary Adjust product stock
// @Description Replace a product's current stock and append an audit record (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param request body object{current_stock=int} true "New absolute stock value"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{product_id} [put]
func (h *InventoryHandler) AdjustStockDoc() {}

// GetStock godoc
// @Summary Get current stock
// @Description Get a product's current stock level
// @Tags Inventory
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{product_id} [get]
func (h *InventoryHandler) GetStockDoc() {}

// GetChangeHistory godoc
// @Summary Get stock change history
// @Description Get a product's stock change audit trail, oldest first
// @Tags Inventory
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object{inventory_changes=array}}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{product_id}/changes [get]
func (h *InventoryHandler) GetChangeHistoryDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *InventoryHandler) HealthCheckDoc() {}
