package http

// RegisterProduct godoc
// @Summary Register a product
// @Description Create a catalog product and its opening-stock ledger baseline
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body object{name=string,category_id=int,vendor_id=int,price=number,opening_stock=int} true "Product registration"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Security BearerAuth
// @Router /api/products/register [post]
func (h *CatalogHandler) RegisterProductDoc() {}

// GetProduct godoc
// @Summary Get a product
// @Description Retrieve a catalog product by id
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}
