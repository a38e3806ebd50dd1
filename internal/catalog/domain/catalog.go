package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Product represents a catalog product
type Product struct {
	ProductID  uint    `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name       string  `gorm:"not null" json:"name"`
	CategoryID uint    `gorm:"index" json:"category_id"`
	VendorID   uint    `gorm:"index" json:"vendor_id"`
	Price      float64 `gorm:"not null" json:"price"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// Category represents a product category
type Category struct {
	CategoryID   uint   `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string `gorm:"not null" json:"category_name"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Vendor represents a product vendor
type Vendor struct {
	VendorID   uint   `gorm:"primaryKey;column:vendor_id" json:"vendor_id"`
	VendorName string `gorm:"not null" json:"vendor_name"`
}

// TableName specifies the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}

// User represents a store user referenced by sales records
type User struct {
	UserID   uint   `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Role     string `gorm:"default:staff" json:"role"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	CreateProduct(product *Product) error
	FindProductByID(productID uint) (*Product, error)
	FindCategoryByID(categoryID uint) (*Category, error)
}
