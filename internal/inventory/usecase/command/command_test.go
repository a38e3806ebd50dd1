package command

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// Mock LedgerRepository
type mockLedgerRepo struct {
	mu          sync.Mutex
	inventories map[uint]*domain.Inventory
	changes     []domain.InventoryChange
	nextID      uint
}

func newMockLedgerRepo() *mockLedgerRepo {
	return &mockLedgerRepo{inventories: make(map[uint]*domain.Inventory)}
}

func (m *mockLedgerRepo) Initialize(productID uint, openingStock int) (*domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inventories[productID]; ok {
		return nil, domain.ErrAlreadyExists
	}

	m.nextID++
	inventory := &domain.Inventory{
		ID:           m.nextID,
		ProductID:    productID,
		CurrentStock: openingStock,
		LastUpdated:  time.Now(),
	}
	m.inventories[productID] = inventory
	return inventory, nil
}

func (m *mockLedgerRepo) AdjustStock(productID uint, newStock int) (*domain.Inventory, *domain.InventoryChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inventory, ok := m.inventories[productID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}

	change := domain.InventoryChange{
		ID:         uint(len(m.changes) + 1),
		ProductID:  productID,
		OldStock:   inventory.CurrentStock,
		NewStock:   newStock,
		ChangeDate: time.Now(),
	}
	inventory.CurrentStock = newStock
	m.changes = append(m.changes, change)
	return inventory, &change, nil
}

func (m *mockLedgerRepo) FindByProductID(productID uint) (*domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inventory, ok := m.inventories[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inventory, nil
}

func (m *mockLedgerRepo) FindLowStock(threshold int) ([]domain.LowStockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []domain.LowStockItem
	for _, inventory := range m.inventories {
		if inventory.CurrentStock <= threshold {
			items = append(items, domain.LowStockItem{
				ProductID:    inventory.ProductID,
				CurrentStock: inventory.CurrentStock,
			})
		}
	}
	return items, nil
}

func (m *mockLedgerRepo) ChangeHistory(productID uint) ([]domain.InventoryChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inventories[productID]; !ok {
		return nil, domain.ErrNotFound
	}

	var history []domain.InventoryChange
	for _, change := range m.changes {
		if change.ProductID == productID {
			history = append(history, change)
		}
	}
	return history, nil
}

func TestInitializeStock(t *testing.T) {
	repo := newMockLedgerRepo()
	handler := NewInitializeStockHandler(repo)

	inventory, err := handler.Handle(InitializeStockCommand{ProductID: 1, OpeningStock: 100})
	require.NoError(t, err)
	assert.Equal(t, uint(1), inventory.ProductID)
	assert.Equal(t, 100, inventory.CurrentStock)
}

func TestInitializeStock_Validation(t *testing.T) {
	handler := NewInitializeStockHandler(newMockLedgerRepo())

	_, err := handler.Handle(InitializeStockCommand{ProductID: 0, OpeningStock: 10})
	assert.Error(t, err)

	_, err = handler.Handle(InitializeStockCommand{ProductID: 1, OpeningStock: -1})
	assert.Error(t, err)
}

func TestInitializeStock_Duplicate(t *testing.T) {
	repo := newMockLedgerRepo()
	handler := NewInitializeStockHandler(repo)

	_, err := handler.Handle(InitializeStockCommand{ProductID: 1, OpeningStock: 100})
	require.NoError(t, err)

	_, err = handler.Handle(InitializeStockCommand{ProductID: 1, OpeningStock: 50})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestAdjustStock(t *testing.T) {
	repo := newMockLedgerRepo()
	_, err := repo.Initialize(1, 100)
	require.NoError(t, err)

	handler := NewAdjustStockHandler(repo)

	result, err := handler.Handle(AdjustStockCommand{ProductID: 1, NewStock: 60})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Inventory.CurrentStock)
	assert.Equal(t, 100, result.Change.OldStock)
	assert.Equal(t, 60, result.Change.NewStock)
}

func TestAdjustStock_Validation(t *testing.T) {
	handler := NewAdjustStockHandler(newMockLedgerRepo())

	_, err := handler.Handle(AdjustStockCommand{ProductID: 0, NewStock: 10})
	assert.Error(t, err)

	_, err = handler.Handle(AdjustStockCommand{ProductID: 1, NewStock: -5})
	assert.Error(t, err)
}

func TestAdjustStock_UnknownProduct(t *testing.T) {
	handler := NewAdjustStockHandler(newMockLedgerRepo())

	_, err := handler.Handle(AdjustStockCommand{ProductID: 42, NewStock: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
