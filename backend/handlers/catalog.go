// ABOUTME: HTTP handlers for the static product and facility catalog
// ABOUTME: Lists are returned in display order rather than map order

package handlers

import (
	"net/http"

	"github.com/Atlas00000/terra-client/backend/models"
)

// GetProducts returns the product catalog, platform first.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products := make([]models.ProductSpec, 0, len(models.AllProducts))
	for _, name := range models.AllProducts {
		products = append(products, models.Products[name])
	}
	h.writeJSON(w, http.StatusOK, products)
}

// GetFacilities returns the facility requirement tables in wizard order.
func (h *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	facilities := make([]models.FacilityRequirement, 0, len(models.AllFacilityTypes))
	for _, f := range models.AllFacilityTypes {
		facilities = append(facilities, models.Facilities[f])
	}
	h.writeJSON(w, http.StatusOK, facilities)
}
