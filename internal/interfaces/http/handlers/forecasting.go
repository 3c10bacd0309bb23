package handlers

import "net/http"

// ModelAccuracy handles GET /api/models/product-accuracy
func (h *Handlers) ModelAccuracy(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.svc.ModelAccuracy(q.Get("product_id"), q.Get("location_id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// InventoryStatus handles GET /api/inventory/status
func (h *Handlers) InventoryStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.svc.InventoryStatus(q.Get("location_id"), q.Get("status_filter"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// DemandForecast handles GET /api/forecast/demand?location_id=...
func (h *Handlers) DemandForecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locationID := q.Get("location_id")
	if locationID == "" {
		h.writeError(w, r, http.StatusBadRequest, "missing_parameter",
			"location_id query parameter is required")
		return
	}

	results, err := h.svc.DemandForecast(locationID, q.Get("product_id"), q.Get("forecast_date"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}
