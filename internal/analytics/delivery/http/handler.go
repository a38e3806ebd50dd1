package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/retail-backoffice/internal/analytics/cache"
	"github.com/tair/retail-backoffice/internal/analytics/domain"
	"github.com/tair/retail-backoffice/internal/analytics/monitor"
	"github.com/tair/retail-backoffice/internal/analytics/usecase/query"
	"github.com/tair/retail-backoffice/pkg/logger"
)

const dateLayout = "2006-01-02"

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_requests_total",
			Help: "Total number of requests to revenue analytics",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_request_duration_seconds",
			Help:    "Duration of revenue analytics requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// AnalyticsHandler handles HTTP requests for revenue analytics and the
// low stock report
type AnalyticsHandler struct {
	// Query handlers
	totalHandler    *query.TotalRevenueHandler
	bucketHandler   *query.RevenueByBucketHandler
	categoryHandler *query.CompareCategoriesHandler
	periodHandler   *query.ComparePeriodsHandler
	analysisHandler *query.RevenueAnalysisHandler

	lowStockMonitor *monitor.LowStockMonitor
	reportCache     *cache.ReportCache
}

// NewAnalyticsHandler creates a new analytics handler (manual DI)
func NewAnalyticsHandler(repo domain.SalesRepository, lowStockMonitor *monitor.LowStockMonitor) *AnalyticsHandler {
	return NewAnalyticsHandlerWithDI(
		query.NewTotalRevenueHandler(repo),
		query.NewRevenueByBucketHandler(repo),
		query.NewCompareCategoriesHandler(repo),
		query.NewComparePeriodsHandler(repo),
		query.NewRevenueAnalysisHandler(repo),
		lowStockMonitor,
	)
}

// NewAnalyticsHandlerWithDI creates a new analytics handler using
// dependency injection. This is used by Wire.
func NewAnalyticsHandlerWithDI(
	totalHandler *query.TotalRevenueHandler,
	bucketHandler *query.RevenueByBucketHandler,
	categoryHandler *query.CompareCategoriesHandler,
	periodHandler *query.ComparePeriodsHandler,
	analysisHandler *query.RevenueAnalysisHandler,
	lowStockMonitor *monitor.LowStockMonitor,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		totalHandler:    totalHandler,
		bucketHandler:   bucketHandler,
		categoryHandler: categoryHandler,
		periodHandler:   periodHandler,
		analysisHandler: analysisHandler,
		lowStockMonitor: lowStockMonitor,
	}
}

// SetReportCache attaches an optional Redis-backed response cache
func (h *AnalyticsHandler) SetReportCache(reportCache *cache.ReportCache) {
	h.reportCache = reportCache
}

// SetAlertPublisher attaches an optional low stock alert publisher
func (h *AnalyticsHandler) SetAlertPublisher(publisher monitor.AlertPublisher) {
	h.lowStockMonitor.SetPublisher(publisher)
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

// recordingResponseWriter additionally buffers the body for caching
type recordingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rw *recordingResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingResponseWriter) Write(p []byte) (int, error) {
	rw.body.Write(p)
	return rw.ResponseWriter.Write(p)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *AnalyticsHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// cacheMiddleware serves successful GET responses from the report cache
func (h *AnalyticsHandler) cacheMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.reportCache == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := cache.Key(r)
		if payload, ok := h.reportCache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write(payload)
			return
		}

		rw := &recordingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		if rw.statusCode == http.StatusOK {
			h.reportCache.Set(r.Context(), key, rw.body.Bytes())
		}
	}
}

// GetSales handles GET /api/sales
func (h *AnalyticsHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r, false)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	productID := parseUintParam(r, "product_id")
	categoryID := parseUintParam(r, "category_id")

	totals, err := h.totalHandler.Handle(query.TotalRevenueQuery{
		Range:      rng,
		ProductID:  productID,
		CategoryID: categoryID,
	})
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	data := map[string]interface{}{
		"total_quantity_sold": totals.TotalQuantitySold,
		"total_revenue":       totals.TotalRevenue,
	}
	if productID != 0 {
		data["product_id"] = productID
	} else if categoryID != 0 {
		data["category_id"] = categoryID
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// GetRevenueBuckets handles GET /api/revenue
func (h *AnalyticsHandler) GetRevenueBuckets(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r, true)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	buckets, err := h.bucketHandler.Handle(query.RevenueByBucketQuery{
		TimeFrame: r.URL.Query().Get("time_frame"),
		Range:     rng,
	})
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: buckets})
}

// GetRevenueAnalysis handles GET /api/revenue/analysis
func (h *AnalyticsHandler) GetRevenueAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.analysisHandler.Handle(query.RevenueAnalysisQuery{
		TimeFrame:  r.URL.Query().Get("time_frame"),
		CategoryID: parseUintParam(r, "category_id"),
	})
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// CompareCategories handles GET /api/revenue/compare/categories
func (h *AnalyticsHandler) CompareCategories(w http.ResponseWriter, r *http.Request) {
	var rng *domain.DateRange
	if r.URL.Query().Get("start_date") != "" || r.URL.Query().Get("end_date") != "" {
		parsed, err := parseDateRange(r, false)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
			return
		}
		rng = &parsed
	}

	var categoryIDs []uint
	first := parseUintParam(r, "category_id_1")
	second := parseUintParam(r, "category_id_2")
	if first != 0 && second != 0 {
		categoryIDs = []uint{first, second}
	}

	revenues, err := h.categoryHandler.Handle(query.CompareCategoriesQuery{
		Range:       rng,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"revenues": revenues},
	})
}

// ComparePeriods handles GET /api/revenue/compare/periods
func (h *AnalyticsHandler) ComparePeriods(w http.ResponseWriter, r *http.Request) {
	period1, err := parseDateRange(r, false)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	var period2 *domain.DateRange
	prevStart := r.URL.Query().Get("previous_start_date")
	prevEnd := r.URL.Query().Get("previous_end_date")
	if prevStart != "" && prevEnd != "" {
		start, err := time.Parse(dateLayout, prevStart)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid previous_start_date"})
			return
		}
		end, err := time.Parse(dateLayout, prevEnd)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid previous_end_date"})
			return
		}
		period2 = &domain.DateRange{Start: start, End: end}
	}

	comparison, err := h.periodHandler.Handle(query.ComparePeriodsQuery{
		Period1: period1,
		Period2: period2,
	})
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: comparison})
}

// GetLowStock handles GET /api/inventory/low-stock
func (h *AnalyticsHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := strconv.Atoi(r.URL.Query().Get("threshold"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid threshold",
		})
		return
	}

	alerts, err := h.lowStockMonitor.ScanLowStock(r.Context(), threshold)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to scan low stock")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to scan low stock",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"low_stock_items": alerts},
	})
}

func (h *AnalyticsHandler) respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error(r.Context()).Err(err).Msg("Analytics query failed")

	if errors.Is(err, domain.ErrInvalidTimeFrame) || errors.Is(err, domain.ErrInvalidRange) {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Query failed"})
}

// RegisterRoutes registers all analytics routes
func (h *AnalyticsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.cacheMiddleware(h.GetSales))).Methods("GET")
	router.HandleFunc("/api/revenue", h.metricsMiddleware("/api/revenue", h.cacheMiddleware(h.GetRevenueBuckets))).Methods("GET")
	router.HandleFunc("/api/revenue/analysis", h.metricsMiddleware("/api/revenue/analysis", h.cacheMiddleware(h.GetRevenueAnalysis))).Methods("GET")
	router.HandleFunc("/api/revenue/compare/categories", h.metricsMiddleware("/api/revenue/compare/categories", h.cacheMiddleware(h.CompareCategories))).Methods("GET")
	router.HandleFunc("/api/revenue/compare/periods", h.metricsMiddleware("/api/revenue/compare/periods", h.cacheMiddleware(h.ComparePeriods))).Methods("GET")
	router.HandleFunc("/api/inventory/low-stock", h.metricsMiddleware("/api/inventory/low-stock", h.GetLowStock)).Methods("GET")
}

// parseDateRange reads start_date/end_date query params. end_date
// defaults to today. When openStart is set, a missing start_date means
// the beginning of the ledger; otherwise it is required.
func parseDateRange(r *http.Request, openStart bool) (domain.DateRange, error) {
	q := r.URL.Query()

	end := domain.DateOf(time.Now())
	if raw := q.Get("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.DateRange{}, domain.ErrInvalidRange
		}
		end = parsed
	}

	var start time.Time
	if raw := q.Get("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.DateRange{}, domain.ErrInvalidRange
		}
		start = parsed
	} else if openStart {
		start = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		return domain.DateRange{}, domain.ErrInvalidRange
	}

	rng := domain.DateRange{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return domain.DateRange{}, err
	}
	return rng, nil
}

func parseUintParam(r *http.Request, name string) uint {
	value, _ := strconv.ParseUint(r.URL.Query().Get(name), 10, 32)
	return uint(value)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
