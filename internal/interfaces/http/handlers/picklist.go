package handlers

import "net/http"

// PickList handles GET /api/pick-list?location_id=...&date=...
func (h *Handlers) PickList(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get("location_id")
	if locationID == "" {
		h.writeError(w, r, http.StatusBadRequest, "missing_parameter",
			"location_id query parameter is required")
		return
	}

	pl, err := h.svc.PickList(locationID, r.URL.Query().Get("date"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pl)
}

// AllPickLists handles GET /api/pick-list/all, one pick list per location
func (h *Handlers) AllPickLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.AllPickLists(r.URL.Query().Get("date"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, lists)
}
