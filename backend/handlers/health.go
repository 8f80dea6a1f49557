// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports engine, lead store, and matrix cache status

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Atlas00000/terra-client/backend/models"
)

// Health returns API health including inquiry store reachability.
// A failed store ping degrades the status but still answers 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_, cached := h.matrix.Get(matrixCacheKey)

	resp := models.HealthResponse{
		Status:        "ok",
		Engine:        "ok",
		InquiryStore:  "not_configured",
		MatrixCached:  cached,
		TuningSource:  "default",
		ProductCount:  len(models.Products),
		FacilityCount: len(models.Facilities),
	}
	if h.cfg.TuningFile != "" {
		resp.TuningSource = "file"
	}

	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			slog.Warn("Inquiry store ping failed", "error", err)
			resp.InquiryStore = "unavailable"
			resp.Status = "degraded"
		} else {
			resp.InquiryStore = "ok"
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}
