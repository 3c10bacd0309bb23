package handlers

import (
	"net/http"
	"strconv"

	"github.com/mnavar-evidence/shelfsense/internal/query"
)

// AnalyticsSummary handles GET /api/analytics/summary
func (h *Handlers) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.AnalyticsSummary())
}

// ProductPerformance handles GET /api/analytics/product-performance
func (h *Handlers) ProductPerformance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.svc.ProductPerformance(
		q.Get("location_id"),
		q.Get("product_id"),
		q.Get("category"),
		q.Get("performance_tier"),
	)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// TopPerformers handles GET /api/analytics/top-performers
func (h *Handlers) TopPerformers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := query.DefaultTopLimit
	if limitStr := q.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "invalid_parameter",
				"limit must be an integer")
			return
		}
		limit = parsed
	}

	results, err := h.svc.TopPerformers(q.Get("location_id"), limit)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// Trends handles GET /api/analytics/trends
func (h *Handlers) Trends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var hasAnomaly *bool
	if raw := q.Get("has_anomaly"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "invalid_parameter",
				"has_anomaly must be a boolean")
			return
		}
		hasAnomaly = &parsed
	}

	results, err := h.svc.Trends(
		q.Get("location_id"),
		q.Get("product_id"),
		q.Get("trend_direction"),
		hasAnomaly,
	)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// Anomalies handles GET /api/analytics/anomalies
func (h *Handlers) Anomalies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.svc.Anomalies(q.Get("location_id"), q.Get("severity"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}
