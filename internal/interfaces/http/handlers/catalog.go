package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Locations handles GET /api/locations with an optional type filter
func (h *Handlers) Locations(w http.ResponseWriter, r *http.Request) {
	locationType := r.URL.Query().Get("location_type")
	h.writeJSON(w, http.StatusOK, h.svc.Locations(locationType))
}

// Location handles GET /api/locations/{location_id}
func (h *Handlers) Location(w http.ResponseWriter, r *http.Request) {
	loc, err := h.svc.Location(mux.Vars(r)["location_id"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, loc)
}

// Products handles GET /api/products with an optional category filter
func (h *Handlers) Products(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	h.writeJSON(w, http.StatusOK, h.svc.Products(category))
}

// Product handles GET /api/products/{product_id}
func (h *Handlers) Product(w http.ResponseWriter, r *http.Request) {
	prod, err := h.svc.Product(mux.Vars(r)["product_id"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, prod)
}
