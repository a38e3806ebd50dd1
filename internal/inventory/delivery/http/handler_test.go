package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
	"github.com/tair/retail-backoffice/pkg/auth"
)

// Mock LedgerRepository
type mockLedgerRepo struct {
	mu          sync.Mutex
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
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inventories[productID]; ok {
		return nil, domain.ErrAlreadyExists
	}
	inventory := &domain.Inventory{
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
		ProductID:  productID,
		OldStock:   inventory.CurrentStock,
		NewStock:   newStock,
		ChangeDate: time.Now(),
	}
	inventory.CurrentStock = newStock
	m.changes[productID] = append(m.changes[productID], change)
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
	return nil, nil
}

func (m *mockLedgerRepo) ChangeHistory(productID uint) ([]domain.InventoryChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inventories[productID]; !ok {
		return nil, domain.ErrNotFound
	}
	return m.changes[productID], nil
}

func setupRouter(t *testing.T) (*mux.Router, *mockLedgerRepo) {
	t.Helper()

	repo := newMockLedgerRepo()
	handler := NewInventoryHandler(repo)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, repo
}

func adminHeader(t *testing.T) string {
	t.Helper()

	token, err := auth.GenerateToken(1, "admin", auth.RoleAdmin)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router *mux.Router, method, path, authz string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInitializeStockEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/inventory", adminHeader(t),
		map[string]interface{}{"product_id": 1, "opening_stock": 100})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestInitializeStockEndpoint_Duplicate(t *testing.T) {
	router, repo := setupRouter(t)
	repo.Initialize(1, 100)

	rec := doJSON(router, http.MethodPost, "/api/inventory", adminHeader(t),
		map[string]interface{}{"product_id": 1, "opening_stock": 50})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInitializeStockEndpoint_RequiresAuth(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/inventory", "",
		map[string]interface{}{"product_id": 1, "opening_stock": 100})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInitializeStockEndpoint_StaffForbidden(t *testing.T) {
	router, _ := setupRouter(t)

	token, err := auth.GenerateToken(2, "clerk", auth.RoleStaff)
	require.NoError(t, err)

	rec := doJSON(router, http.MethodPost, "/api/inventory", "Bearer "+token,
		map[string]interface{}{"product_id": 1, "opening_stock": 100})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdjustStockEndpoint(t *testing.T) {
	router, repo := setupRouter(t)
	repo.Initialize(1, 100)

	rec := doJSON(router, http.MethodPut, "/api/inventory/1", adminHeader(t),
		map[string]interface{}{"current_stock": 40})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Inventory struct {
				CurrentStock int `json:"current_stock"`
			} `json:"inventory"`
			Change struct {
				OldStock int `json:"old_stock"`
				NewStock int `json:"new_stock"`
			} `json:"inventory_change"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 40, resp.Data.Inventory.CurrentStock)
	assert.Equal(t, 100, resp.Data.Change.OldStock)
	assert.Equal(t, 40, resp.Data.Change.NewStock)
}

func TestAdjustStockEndpoint_UnknownProduct(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPut, "/api/inventory/42", adminHeader(t),
		map[string]interface{}{"current_stock": 10})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStockEndpoint(t *testing.T) {
	router, repo := setupRouter(t)
	repo.Initialize(1, 25)

	rec := doJSON(router, http.MethodGet, "/api/inventory/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			CurrentStock int `json:"current_stock"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.Data.CurrentStock)
}

func TestGetStockEndpoint_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/inventory/42", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetChangeHistoryEndpoint(t *testing.T) {
	router, repo := setupRouter(t)
	repo.Initialize(1, 100)
	repo.AdjustStock(1, 60)

	rec := doJSON(router, http.MethodGet, "/api/inventory/1/changes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			InventoryChanges []struct {
				OldStock int `json:"old_stock"`
				NewStock int `json:"new_stock"`
			} `json:"inventory_changes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.InventoryChanges, 1)
	assert.Equal(t, 100, resp.Data.InventoryChanges[0].OldStock)
}

func TestGetChangeHistoryEndpoint_EmptyHistory(t *testing.T) {
	router, repo := setupRouter(t)
	repo.Initialize(1, 100)

	rec := doJSON(router, http.MethodGet, "/api/inventory/1/changes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			InventoryChanges []json.RawMessage `json:"inventory_changes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.InventoryChanges)
}
