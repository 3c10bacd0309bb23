package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
	"github.com/mnavar-evidence/shelfsense/internal/query"
)

// APIVersion is reported by the index and health endpoints.
const APIVersion = "1.0.0"

type contextKey string

// RequestIDKey carries the per-request id through the handler chain.
const RequestIDKey contextKey = "request_id"

// ErrorResponse is the standardized error envelope
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Handlers manages all HTTP endpoint handlers
type Handlers struct {
	svc *query.Service
}

// NewHandlers creates a new handlers instance over the query service
func NewHandlers(svc *query.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON writes JSON response with proper error handling
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Fallback error response
		http.Error(w, `{"error":"json_encoding_failed"}`, http.StatusInternalServerError)
	}
}

// writeError writes standardized error response
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	requestID, ok := r.Context().Value(RequestIDKey).(string)
	if !ok {
		requestID = "unknown"
	}

	h.writeJSON(w, status, ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Code:      code,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	})
}

// writeServiceError maps query-layer failures onto HTTP statuses
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		h.writeError(w, r, http.StatusNotFound, "not_found", err.Error())
		return
	}
	h.writeError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
}

// Index handles GET / with the endpoint directory
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "ShelfSense Mock API",
		"version": APIVersion,
		"endpoints": map[string]string{
			"locations":        "/api/locations",
			"products":         "/api/products",
			"pick_list":        "/api/pick-list",
			"model_accuracy":   "/api/models/product-accuracy",
			"inventory_status": "/api/inventory/status",
			"demand_forecast":  "/api/forecast/demand",
			"analytics":        "/api/analytics/summary",
		},
	})
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFound handles 404 responses
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.writeError(w, r, http.StatusNotFound, "endpoint_not_found",
		"The requested endpoint does not exist")
}
