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

	"github.com/samuelokello/teahouse/internal/catalog/domain"
	"github.com/samuelokello/teahouse/internal/catalog/seed"
	"github.com/samuelokello/teahouse/internal/catalog/usecase/query"
	"github.com/samuelokello/teahouse/internal/catalog/view"
	"github.com/samuelokello/teahouse/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	getProductsHandler *query.GetProductsHandler
	getProductHandler  *query.GetProductHandler
	searchHandler      *query.SearchProductsHandler

	initializer *seed.Initializer
	publisher   view.CartPublisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler. The publisher may be nil
// when no event backbone is configured.
func NewCatalogHandler(
	getProductsHandler *query.GetProductsHandler,
	getProductHandler *query.GetProductHandler,
	searchHandler *query.SearchProductsHandler,
	initializer *seed.Initializer,
	publisher view.CartPublisher,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalProducts)

	return &CatalogHandler{
		getProductsHandler: getProductsHandler,
		getProductHandler:  getProductHandler,
		searchHandler:      searchHandler,
		initializer:        initializer,
		publisher:          publisher,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		requestSummary:     requestSummary,
		totalProducts:      totalProducts,
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/search", h.metricsMiddleware("/api/products/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/products/watch", h.metricsMiddleware("/api/products/watch", h.WatchProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}/cart", h.metricsMiddleware("/api/products/{id}/cart", h.AddToCart)).Methods("POST")

	// Admin routes (admin role required)
	router.HandleFunc("/api/admin/reseed", h.metricsMiddleware("/api/admin/reseed", AdminMiddleware(h.Reseed))).Methods("POST")
}

// RegisterHealthCheck registers the health endpoint backed by a DB ping
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   "database unreachable",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "healthy",
		})
	}).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithCancel(r)
	defer cancel()

	snap, ok := <-h.getProductsHandler.Handle(ctx)
	if !ok || snap.Err != nil {
		logger.Error(r.Context()).Err(snap.Err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	h.totalProducts.Set(float64(len(snap.Products)))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": snap.Products,
			"total":    len(snap.Products),
		},
	})
}

// SearchProducts handles GET /api/products/search
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	ctx, cancel := contextWithCancel(r)
	defer cancel()

	snap, ok := <-h.searchHandler.Handle(ctx, filters)
	if !ok {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Search produced no result",
		})
		return
	}
	if errors.Is(snap.Err, domain.ErrSearchNotImplemented) {
		respondJSON(w, http.StatusNotImplemented, Response{
			Success: false,
			Error:   snap.Err.Error(),
		})
		return
	}
	if snap.Err != nil {
		logger.Error(r.Context()).Err(snap.Err).Msg("Failed to search products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to search products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": snap.Products,
			"total":    len(snap.Products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), id)
	if errors.Is(err, domain.ErrProductNotFound) || (err == nil && product == nil) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Int("id", id).Msg("Failed to get product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get product",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// WatchProducts handles GET /api/products/watch. It streams the list
// screen's tri-state over SSE until the client disconnects.
func (h *CatalogHandler) WatchProducts(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Streaming not supported",
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	presenter := view.NewListPresenter(r.Context(), h.getProductsHandler)
	defer presenter.Close()
	presenter.Load()

	for {
		select {
		case state, ok := <-presenter.States():
			if !ok {
				return
			}
			payload, err := json.Marshal(state)
			if err != nil {
				logger.Error(r.Context()).Err(err).Msg("Failed to marshal list state")
				return
			}
			if _, err := w.Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

// AddToCart handles POST /api/products/{id}/cart. Nothing is persisted;
// the response carries the one-shot notification event.
func (h *CatalogHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), id)
	if errors.Is(err, domain.ErrProductNotFound) || (err == nil && product == nil) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Int("id", id).Msg("Failed to load product for cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to add to cart",
		})
		return
	}

	presenter := view.NewDetailPresenter(r.Context(), h.getProductHandler, h.publisher)
	defer presenter.Close()
	presenter.AddToCart(*product)

	select {
	case event := <-presenter.Events():
		respondJSON(w, http.StatusAccepted, Response{
			Success: true,
			Message: "Added to cart",
			Data:    event,
		})
	case <-time.After(time.Second):
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Cart event was not emitted",
		})
	}
}

// Reseed handles POST /api/admin/reseed
func (h *CatalogHandler) Reseed(w http.ResponseWriter, r *http.Request) {
	if h.initializer == nil {
		respondJSON(w, http.StatusNotImplemented, Response{
			Success: false,
			Error:   "Seeding is not available for this source",
		})
		return
	}

	if err := h.initializer.ForceUpdate(r.Context()); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to reseed catalog")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to reseed catalog",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Catalog reseeded",
	})
}

// contextWithCancel scopes a one-shot read of an infinite stream to the
// request, so the subscription is released as soon as the first snapshot
// is taken.
func contextWithCancel(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithCancel(r.Context())
}

func productID(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["id"])
}

func parseFilters(r *http.Request) (domain.SearchFilters, error) {
	q := r.URL.Query()
	filters := domain.SearchFilters{Query: q.Get("query")}

	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, errors.New("invalid min_price")
		}
		filters.MinPrice = &f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, errors.New("invalid max_price")
		}
		filters.MaxPrice = &f
	}
	if v := q.Get("category"); v != "" {
		filters.Category = &v
	}
	if v := q.Get("min_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, errors.New("invalid min_count")
		}
		filters.MinCount = &n
	}
	if v := q.Get("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, errors.New("invalid min_rating")
		}
		filters.MinRating = &f
	}
	return filters, nil
}

func respondJSON(w http.ResponseWriter, status int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
