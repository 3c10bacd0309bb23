// Package http is the read-only JSON API surface. Every endpoint is a GET
// over the query service; writes do not exist in this system.
package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/mnavar-evidence/shelfsense/internal/interfaces/http/handlers"
	"github.com/mnavar-evidence/shelfsense/internal/query"
)

// Server represents the read-only HTTP server
type Server struct {
	router   *mux.Router
	server   *http.Server
	handlers *handlers.Handlers
	metrics  *MetricsRegistry
	limiter  *rate.Limiter
	config   ServerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	RateLimit    rate.Limit
	RateBurst    int
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8000,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		RateLimit:    rate.Limit(100),
		RateBurst:    200,
	}
}

// NewServer creates a new HTTP server instance
func NewServer(config ServerConfig, svc *query.Service) (*Server, error) {
	// Check if port is available
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("port %d is busy or unavailable: %w", config.Port, err)
	}
	listener.Close()

	server := &Server{
		router:   mux.NewRouter(),
		handlers: handlers.NewHandlers(svc),
		metrics:  NewMetricsRegistry(),
		limiter:  rate.NewLimiter(config.RateLimit, config.RateBurst),
		config:   config,
	}

	server.setupRoutes()

	server.server = &http.Server{
		Addr:         addr,
		Handler:      server.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return server, nil
}

// Router exposes the configured router, used by handler tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.metricsMiddleware)
	s.router.Use(s.rateLimitMiddleware)
	s.router.Use(s.timeoutMiddleware)
	s.router.Use(s.corsMiddleware)

	s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	// API routes (JSON only)
	api := s.router.PathPrefix("/").Subrouter()
	api.Use(s.jsonContentTypeMiddleware)

	api.HandleFunc("/", s.handlers.Index).Methods("GET")
	api.HandleFunc("/health", s.handlers.Health).Methods("GET")

	api.HandleFunc("/api/locations", s.handlers.Locations).Methods("GET")
	api.HandleFunc("/api/locations/{location_id}", s.handlers.Location).Methods("GET")
	api.HandleFunc("/api/products", s.handlers.Products).Methods("GET")
	api.HandleFunc("/api/products/{product_id}", s.handlers.Product).Methods("GET")

	api.HandleFunc("/api/pick-list", s.handlers.PickList).Methods("GET")
	api.HandleFunc("/api/pick-list/all", s.handlers.AllPickLists).Methods("GET")

	api.HandleFunc("/api/models/product-accuracy", s.handlers.ModelAccuracy).Methods("GET")
	api.HandleFunc("/api/inventory/status", s.handlers.InventoryStatus).Methods("GET")
	api.HandleFunc("/api/forecast/demand", s.handlers.DemandForecast).Methods("GET")

	api.HandleFunc("/api/analytics/summary", s.handlers.AnalyticsSummary).Methods("GET")
	api.HandleFunc("/api/analytics/product-performance", s.handlers.ProductPerformance).Methods("GET")
	api.HandleFunc("/api/analytics/top-performers", s.handlers.TopPerformers).Methods("GET")
	api.HandleFunc("/api/analytics/trends", s.handlers.Trends).Methods("GET")
	api.HandleFunc("/api/analytics/anomalies", s.handlers.Anomalies).Methods("GET")

	api.HandleFunc("/api/alerts", s.handlers.Alerts).Methods("GET")
	api.HandleFunc("/api/alerts/critical", s.handlers.CriticalAlerts).Methods("GET")
	api.HandleFunc("/api/alerts/stockout-risks", s.handlers.StockoutRisks).Methods("GET")

	// 404 handler
	s.router.NotFoundHandler = http.HandlerFunc(s.handlers.NotFound)
}

// requestIDMiddleware adds unique request ID to each request
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		ctx := context.WithValue(r.Context(), handlers.RequestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLoggingMiddleware logs all requests with structured format
func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(wrapper, r)

		requestID, _ := r.Context().Value(handlers.RequestIDKey).(string)
		log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}

// metricsMiddleware records request counters and latency
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.metrics.InFlight.Inc()
		defer s.metrics.InFlight.Dec()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(wrapper, r)

		s.metrics.ObserveRequest(r.URL.Path, r.Method, wrapper.statusCode, time.Since(start))
	})
}

// rateLimitMiddleware rejects requests above the configured rate
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.metrics.RateLimited.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limit exceeded"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// timeoutMiddleware enforces request timeouts
func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsMiddleware allows any origin, matching the open mock deployment
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// jsonContentTypeMiddleware sets JSON content type for API responses
func (s *Server) jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Info().Str("addr", s.GetAddress()).Msg("starting HTTP server (read-only)")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// GetAddress returns the server address
func (s *Server) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// responseWrapper captures HTTP status codes for logging
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
