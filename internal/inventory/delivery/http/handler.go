package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/retail-backoffice/internal/inventory/domain"
	"github.com/tair/retail-backoffice/internal/inventory/usecase/command"
	"github.com/tair/retail-backoffice/internal/inventory/usecase/query"
	"github.com/tair/retail-backoffice/internal/server"
	"github.com/tair/retail-backoffice/kafka"
	"github.com/tair/retail-backoffice/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_requests_total",
			Help: "Total number of requests to the stock ledger",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_request_duration_seconds",
			Help:    "Duration of stock ledger requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	stockAdjustments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_stock_adjustments_total",
			Help: "Total number of committed stock adjustments",
		},
	)
)

// StockEventPublisher publishes ledger events to the event bus
type StockEventPublisher interface {
	PublishStockAdjusted(ctx context.Context, event kafka.StockAdjustedEvent) error
}

// InventoryHandler handles HTTP requests for the stock ledger using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	initializeHandler *command.InitializeStockHandler
	adjustHandler     *command.AdjustStockHandler

	// Query handlers
	getStockHandler *query.GetStockHandler
	historyHandler  *query.ChangeHistoryHandler

	publisher StockEventPublisher
}

// NewInventoryHandler creates a new inventory handler (manual DI)
func NewInventoryHandler(repo domain.LedgerRepository) *InventoryHandler {
	return NewInventoryHandlerWithDI(
		command.NewInitializeStockHandler(repo),
		command.NewAdjustStockHandler(repo),
		query.NewGetStockHandler(repo),
		query.NewChangeHistoryHandler(repo),
	)
}

// NewInventoryHandlerWithDI creates a new inventory handler using
// dependency injection. This is used by Wire.
func NewInventoryHandlerWithDI(
	initializeHandler *command.InitializeStockHandler,
	adjustHandler *command.AdjustStockHandler,
	getStockHandler *query.GetStockHandler,
	historyHandler *query.ChangeHistoryHandler,
) *InventoryHandler {
	return &InventoryHandler{
		initializeHandler: initializeHandler,
		adjustHandler:     adjustHandler,
		getStockHandler:   getStockHandler,
		historyHandler:    historyHandler,
	}
}

// SetPublisher attaches an optional event publisher. Without one,
// adjustments still commit but no events are emitted.
func (h *InventoryHandler) SetPublisher(publisher StockEventPublisher) {
	h.publisher = publisher
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// InitializeStock handles POST /api/inventory
func (h *InventoryHandler) InitializeStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID    uint `json:"product_id"`
		OpeningStock int  `json:"opening_stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	inventory, err := h.initializeHandler.Handle(command.InitializeStockCommand{
		ProductID:    req.ProductID,
		OpeningStock: req.OpeningStock,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to initialize stock")
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrAlreadyExists) {
			status = http.StatusConflict
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock initialized successfully",
		Data:    inventory,
	})
}

// AdjustStock handles PUT /api/inventory/{product_id}
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["product_id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		CurrentStock int `json:"current_stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.adjustHandler.Handle(command.AdjustStockCommand{
		ProductID: uint(productID),
		NewStock:  req.CurrentStock,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to adjust stock")
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	stockAdjustments.Inc()

	if h.publisher != nil {
		event := kafka.StockAdjustedEvent{
			ProductID: result.Inventory.ProductID,
			OldStock:  result.Change.OldStock,
			NewStock:  result.Change.NewStock,
		}
		if err := h.publisher.PublishStockAdjusted(r.Context(), event); err != nil {
			// The adjustment is already committed; the event is best effort
			logger.Warn(r.Context()).Err(err).Msg("Failed to publish stock adjusted event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock adjusted successfully",
		Data:    result,
	})
}

// GetStock handles GET /api/inventory/{product_id}
func (h *InventoryHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["product_id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	inventory, err := h.getStockHandler.Handle(query.GetStockQuery{ProductID: uint(productID)})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    inventory,
	})
}

// GetChangeHistory handles GET /api/inventory/{product_id}/changes
func (h *InventoryHandler) GetChangeHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["product_id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	changes, err := h.historyHandler.Handle(query.ChangeHistoryQuery{ProductID: uint(productID)})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"inventory_changes": changes},
	})
}

// RegisterRoutes registers all stock ledger routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/inventory/{product_id:[0-9]+}", h.metricsMiddleware("/api/inventory/{product_id}", h.GetStock)).Methods("GET")
	router.HandleFunc("/api/inventory/{product_id:[0-9]+}/changes", h.metricsMiddleware("/api/inventory/{product_id}/changes", h.GetChangeHistory)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/inventory", h.metricsMiddleware("/api/inventory", server.AdminMiddleware(h.InitializeStock))).Methods("POST")
	router.HandleFunc("/api/inventory/{product_id:[0-9]+}", h.metricsMiddleware("/api/inventory/{product_id}", server.AdminMiddleware(h.AdjustStock))).Methods("PUT")
}

// RegisterHealthCheck registers health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Back office service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
