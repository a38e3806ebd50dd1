package domain

import "time"

// Sale is a read-only view of one sales ledger row. Sales are recorded
// by an external collaborator; this service never writes them.
type Sale struct {
	SaleID       uint      `json:"sale_id" gorm:"primaryKey;column:sale_id"`
	ProductID    uint      `json:"product_id" gorm:"not null;index"`
	UserID       *uint     `json:"user_id,omitempty"`
	QuantitySold int       `json:"quantity_sold" gorm:"not null"`
	SaleDate     time.Time `json:"sale_date" gorm:"not null"`
	Revenue      float64   `json:"revenue" gorm:"not null"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// SalesTotals holds summed quantity and revenue over a set of sales
type SalesTotals struct {
	TotalQuantitySold int     `json:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// BucketRevenue is one entry of a bucketed revenue grouping
type BucketRevenue struct {
	Bucket  string  `json:"bucket"`
	Revenue float64 `json:"revenue"`
}

// CategoryRevenue is one category's summed revenue
type CategoryRevenue struct {
	CategoryName string  `json:"category_name"`
	Revenue      float64 `json:"revenue"`
}

// PeriodComparison holds revenue sums for one or two periods
type PeriodComparison struct {
	CurrentPeriodRevenue  float64  `json:"current_period_revenue"`
	PreviousPeriodRevenue *float64 `json:"previous_period_revenue,omitempty"`
}

// SalesRepository is the read interface over the external sales ledger.
// Zero-valued productID/categoryID mean no filter.
type SalesRepository interface {
	FindSales(r DateRange, productID, categoryID uint) ([]Sale, error)
	RevenueByCategory(r *DateRange, categoryIDs []uint) ([]CategoryRevenue, error)
	RevenueInRange(r DateRange) (float64, error)
}
