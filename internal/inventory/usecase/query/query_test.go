package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
)

// Mock LedgerRepository covering the read side
type mockLedgerRepo struct {
	inventories map[uint]*domain.Inventory
	changes     map[uint][]domain.InventoryChange
}

func newMockLedgerRepo() *mockLedgerRepo {
	return &mockLedgerRepo{
		inventories: make(map[uint]*domain.Inventory),
		changes:     make(map[uint][]domain.InventoryChange),
	}
}

func (m *mockLedgerRepo) Initialize(productID uint, openingStock int) (*domain.Inventory, error) {
	inventory := &domain.Inventory{
		ProductID:    productID,
		CurrentStock: openingStock,
		LastUpdated:  time.Now(),
	}
	m.inventories[productID] = inventory
	return inventory, nil
}

func (m *mockLedgerRepo) AdjustStock(productID uint, newStock int) (*domain.Inventory, *domain.InventoryChange, error) {
	return nil, nil, nil
}

func (m *mockLedgerRepo) FindByProductID(productID uint) (*domain.Inventory, error) {
	inventory, ok := m.inventories[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inventory, nil
}

func (m *mockLedgerRepo) FindLowStock(threshold int) ([]domain.LowStockItem, error) {
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
	if _, ok := m.inventories[productID]; !ok {
		return nil, domain.ErrNotFound
	}
	return m.changes[productID], nil
}

func TestGetStock(t *testing.T) {
	repo := newMockLedgerRepo()
	repo.Initialize(1, 25)

	handler := NewGetStockHandler(repo)

	inventory, err := handler.Handle(GetStockQuery{ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, 25, inventory.CurrentStock)
}

func TestGetStock_UnknownProduct(t *testing.T) {
	handler := NewGetStockHandler(newMockLedgerRepo())

	_, err := handler.Handle(GetStockQuery{ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetStock_Validation(t *testing.T) {
	handler := NewGetStockHandler(newMockLedgerRepo())

	_, err := handler.Handle(GetStockQuery{ProductID: 0})
	assert.Error(t, err)
}

func TestListLowStock(t *testing.T) {
	repo := newMockLedgerRepo()
	repo.Initialize(1, 2)
	repo.Initialize(2, 50)

	handler := NewListLowStockHandler(repo)

	items, err := handler.Handle(ListLowStockQuery{Threshold: 5})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductID)
}

func TestListLowStock_NegativeThreshold(t *testing.T) {
	repo := newMockLedgerRepo()
	repo.Initialize(1, 0)

	handler := NewListLowStockHandler(repo)

	// Negative thresholds are valid and simply match nothing here
	items, err := handler.Handle(ListLowStockQuery{Threshold: -1})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestChangeHistory(t *testing.T) {
	repo := newMockLedgerRepo()
	repo.Initialize(1, 10)
	repo.changes[1] = []domain.InventoryChange{
		{ProductID: 1, OldStock: 10, NewStock: 5, ChangeDate: time.Now()},
	}

	handler := NewChangeHistoryHandler(repo)

	changes, err := handler.Handle(ChangeHistoryQuery{ProductID: 1})
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, 5, changes[0].NewStock)
}

func TestChangeHistory_EmptyIsNotAnError(t *testing.T) {
	repo := newMockLedgerRepo()
	repo.Initialize(1, 10)

	handler := NewChangeHistoryHandler(repo)

	changes, err := handler.Handle(ChangeHistoryQuery{ProductID: 1})
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestChangeHistory_UnknownProduct(t *testing.T) {
	handler := NewChangeHistoryHandler(newMockLedgerRepo())

	_, err := handler.Handle(ChangeHistoryQuery{ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
