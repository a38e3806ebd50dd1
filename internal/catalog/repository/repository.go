package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/catalog/domain"
)

// GormCatalogRepository implements CatalogRepository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Category{},
		&domain.Vendor{},
		&domain.User{},
		&domain.Product{},
	)
}

// CreateProduct inserts a new catalog product
func (r *GormCatalogRepository) CreateProduct(product *domain.Product) error {
	return r.db.Create(product).Error
}

// FindProductByID retrieves a product by its id
func (r *GormCatalogRepository) FindProductByID(productID uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.Where("product_id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindCategoryByID retrieves a category by its id
func (r *GormCatalogRepository) FindCategoryByID(categoryID uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.Where("category_id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ProductName resolves a product id to its display name. It reports
// ok=false when the product is absent from the catalog.
func (r *GormCatalogRepository) ProductName(ctx context.Context, productID uint) (string, bool, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return product.Name, true, nil
}
