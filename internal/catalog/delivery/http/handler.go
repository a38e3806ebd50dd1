package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/retail-backoffice/internal/catalog/domain"
	"github.com/tair/retail-backoffice/internal/catalog/usecase/command"
	"github.com/tair/retail-backoffice/internal/catalog/usecase/query"
	invcommand "github.com/tair/retail-backoffice/internal/inventory/usecase/command"
	"github.com/tair/retail-backoffice/internal/server"
	"github.com/tair/retail-backoffice/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the product catalog",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of product catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	registerHandler *command.RegisterProductHandler
	getHandler      *query.GetProductHandler
}

// NewCatalogHandler creates a new catalog handler (manual DI)
func NewCatalogHandler(repo domain.CatalogRepository, initializeStock *invcommand.InitializeStockHandler) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		command.NewRegisterProductHandler(repo, initializeStock),
		query.NewGetProductHandler(repo),
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using
// dependency injection. This is used by Wire.
func NewCatalogHandlerWithDI(
	registerHandler *command.RegisterProductHandler,
	getHandler *query.GetProductHandler,
) *CatalogHandler {
	return &CatalogHandler{
		registerHandler: registerHandler,
		getHandler:      getHandler,
	}
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
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterProduct handles POST /api/products/register
func (h *CatalogHandler) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string  `json:"name"`
		CategoryID   uint    `json:"category_id"`
		VendorID     uint    `json:"vendor_id"`
		Price        float64 `json:"price"`
		OpeningStock int     `json:"opening_stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.registerHandler.Handle(command.RegisterProductCommand{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		VendorID:     req.VendorID,
		Price:        req.Price,
		OpeningStock: req.OpeningStock,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to register product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product registered successfully",
		Data:    result,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ProductID: uint(productID)})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrProductNotFound) {
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
		Data:    product,
	})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/products/{id:[0-9]+}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/products/register", h.metricsMiddleware("/api/products/register", server.AdminMiddleware(h.RegisterProduct))).Methods("POST")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
