package repository

import (
	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/analytics/domain"
)

// GormSalesRepository reads the external sales ledger with gorm.
// All methods are read-only; sales rows are owned by the sales
// recording collaborator.
type GormSalesRepository struct {
	db *gorm.DB
}

func NewGormSalesRepository(db *gorm.DB) *GormSalesRepository {
	return &GormSalesRepository{db: db}
}

// FindSales returns sales whose sale_date falls within r, both ends
// inclusive. A non-zero productID restricts to one product; a non-zero
// categoryID restricts to all products of one category.
func (r *GormSalesRepository) FindSales(rng domain.DateRange, productID, categoryID uint) ([]domain.Sale, error) {
	query := r.db.Model(&domain.Sale{}).
		Where("sale_date >= ? AND sale_date <= ?", rng.Start, rng.End)

	if productID != 0 {
		query = query.Where("sales.product_id = ?", productID)
	}
	if categoryID != 0 {
		query = query.
			Joins("JOIN products ON products.product_id = sales.product_id").
			Where("products.category_id = ?", categoryID)
	}

	var sales []domain.Sale
	err := query.Order("sale_date asc, sale_id asc").Find(&sales).Error
	return sales, err
}

// RevenueByCategory sums revenue per category name, joining sales
// through products to categories. A nil range includes all sales; a
// category id list restricts to those categories.
func (r *GormSalesRepository) RevenueByCategory(rng *domain.DateRange, categoryIDs []uint) ([]domain.CategoryRevenue, error) {
	query := r.db.Model(&domain.Sale{}).
		Select("categories.category_name AS category_name, SUM(sales.revenue) AS revenue").
		Joins("JOIN products ON products.product_id = sales.product_id").
		Joins("JOIN categories ON categories.category_id = products.category_id").
		Group("categories.category_name")

	if rng != nil {
		query = query.Where("sales.sale_date >= ? AND sales.sale_date <= ?", rng.Start, rng.End)
	}
	if len(categoryIDs) > 0 {
		query = query.Where("categories.category_id IN ?", categoryIDs)
	}

	var rows []domain.CategoryRevenue
	err := query.Order("categories.category_name asc").Scan(&rows).Error
	return rows, err
}

// RevenueInRange sums revenue over the range, zero when nothing matches
func (r *GormSalesRepository) RevenueInRange(rng domain.DateRange) (float64, error) {
	var total float64
	row := r.db.Model(&domain.Sale{}).
		Where("sale_date >= ? AND sale_date <= ?", rng.Start, rng.End).
		Select("COALESCE(SUM(revenue), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
