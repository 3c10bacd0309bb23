package handlers

import "net/http"

// Alerts handles GET /api/alerts with optional location/type/severity filters
func (h *Handlers) Alerts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	summary, err := h.svc.Alerts(q.Get("location_id"), q.Get("alert_type"), q.Get("severity"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// CriticalAlerts handles GET /api/alerts/critical
func (h *Handlers) CriticalAlerts(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.CriticalAlerts(r.URL.Query().Get("location_id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// StockoutRisks handles GET /api/alerts/stockout-risks
func (h *Handlers) StockoutRisks(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.StockoutRisks(r.URL.Query().Get("location_id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
