package http

// GetSales godoc
// @Summary Sales totals
// @Description Sum revenue and quantity sold over a date range, optionally filtered by product or category
// @Tags Analytics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD), defaults to today"
// @Param product_id query int false "Product filter"
// @Param category_id query int false "Category filter"
// @Success 200 {object} object{success=bool,data=object{total_quantity_sold=int,total_revenue=number}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/sales [get]
func (h *AnalyticsHandler) GetSalesDoc() {}

// GetRevenueBuckets godoc
// @Summary Bucketed revenue
// @Description Group revenue into daily, monthly or annual buckets
// @Tags Analytics
// @Produce json
// @Param time_frame query string true "daily, monthly or annual"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/revenue [get]
func (h *AnalyticsHandler) GetRevenueBucketsDoc() {}

// GetRevenueAnalysis godoc
// @Summary Named window revenue
// @Description Sum revenue over a named time window ending today (daily, weekly, monthly, annually)
// @Tags Analytics
// @Produce json
// @Param time_frame query string true "daily, weekly, monthly or annually"
// @Param category_id query int false "Category filter"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/revenue/analysis [get]
func (h *AnalyticsHandler) GetRevenueAnalysisDoc() {}

// CompareCategories godoc
// @Summary Compare category revenue
// @Description Sum revenue per category, optionally restricted to a pair of categories and a date range
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param category_id_1 query int false "First category"
// @Param category_id_2 query int false "Second category"
// @Success 200 {object} object{success=bool,data=object{revenues=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/revenue/compare/categories [get]
func (h *AnalyticsHandler) CompareCategoriesDoc() {}

// ComparePeriods godoc
// @Summary Compare period revenue
// @Description Sum revenue over one period and optionally a previous period
// @Tags Analytics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param previous_start_date query string false "Previous period start"
// @Param previous_end_date query string false "Previous period end"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/revenue/compare/periods [get]
func (h *AnalyticsHandler) ComparePeriodsDoc() {}

// GetLowStock godoc
// @Summary Low stock report
// @Description List products at or below the stock threshold with their catalog names
// @Tags Analytics
// @Produce json
// @Param threshold query int true "Stock threshold"
// @Success 200 {object} object{success=bool,data=object{low_stock_items=array}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory/low-stock [get]
func (h *AnalyticsHandler) GetLowStockDoc() {}
