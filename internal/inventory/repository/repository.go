package repository

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// GormLedgerRepository persists the stock ledger with gorm.
//
// Mutations take a per-product mutex and run inside one transaction, so
// the read-update-append sequence is indivisible with respect to other
// mutations on the same product. Reads never observe the inventory row
// and its paired change row out of sync.
type GormLedgerRepository struct {
	db    *gorm.DB
	locks sync.Map // product id -> *sync.Mutex
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

func (r *GormLedgerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inventory{}, &domain.InventoryChange{})
}

func (r *GormLedgerRepository) productLock(productID uint) *sync.Mutex {
	lock, _ := r.locks.LoadOrStore(productID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// today returns the current date with the time component stripped
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Initialize creates the baseline ledger record for a new product.
// No change row is written: the baseline is not a mutation.
func (r *GormLedgerRepository) Initialize(productID uint, openingStock int) (*domain.Inventory, error) {
	lock := r.productLock(productID)
	lock.Lock()
	defer lock.Unlock()

	inventory := &domain.Inventory{
		ProductID:    productID,
		CurrentStock: openingStock,
		LastUpdated:  today(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Inventory
		err := tx.Where("product_id = ?", productID).First(&existing).Error
		if err == nil {
			return domain.ErrAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(inventory).Error
	})
	if err != nil {
		return nil, err
	}

	return inventory, nil
}

// AdjustStock replaces the current stock with an absolute value and
// appends the matching change row in the same transaction.
func (r *GormLedgerRepository) AdjustStock(productID uint, newStock int) (*domain.Inventory, *domain.InventoryChange, error) {
	lock := r.productLock(productID)
	lock.Lock()
	defer lock.Unlock()

	var inventory domain.Inventory
	var change domain.InventoryChange

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("product_id = ?", productID).First(&inventory).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		change = domain.InventoryChange{
			ProductID:  productID,
			OldStock:   inventory.CurrentStock,
			NewStock:   newStock,
			ChangeDate: time.Now().UTC(),
		}

		inventory.CurrentStock = newStock
		inventory.LastUpdated = today()

		if err := tx.Save(&inventory).Error; err != nil {
			return err
		}
		return tx.Create(&change).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &inventory, &change, nil
}

func (r *GormLedgerRepository) FindByProductID(productID uint) (*domain.Inventory, error) {
	var inventory domain.Inventory
	err := r.db.Where("product_id = ?", productID).First(&inventory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// FindLowStock returns every product at or below the threshold,
// ordered by product id
func (r *GormLedgerRepository) FindLowStock(threshold int) ([]domain.LowStockItem, error) {
	var inventories []domain.Inventory
	err := r.db.Where("current_stock <= ?", threshold).
		Order("product_id").
		Find(&inventories).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.LowStockItem, 0, len(inventories))
	for _, inv := range inventories {
		items = append(items, domain.LowStockItem{
			ProductID:    inv.ProductID,
			CurrentStock: inv.CurrentStock,
		})
	}
	return items, nil
}

// ChangeHistory returns the product's change rows ascending by time.
// A known product with no changes yet yields an empty slice; only an
// unknown product is ErrNotFound.
func (r *GormLedgerRepository) ChangeHistory(productID uint) ([]domain.InventoryChange, error) {
	var inventory domain.Inventory
	err := r.db.Where("product_id = ?", productID).First(&inventory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var changes []domain.InventoryChange
	err = r.db.Where("product_id = ?", productID).
		Order("change_date asc, id asc").
		Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}
