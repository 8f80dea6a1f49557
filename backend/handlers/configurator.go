// ABOUTME: HTTP handlers for the configurator wizard endpoints
// ABOUTME: Serves option lists, single recommendations, and the cached matrix

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/backend/services"
)

// GetOptions returns the selectable values for the three wizard questions.
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.BuildOptions())
}

// PostRecommendation generates a recommendation from a JSON body.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) PostRecommendation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var in models.ConfigurationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := services.ValidateConfigurationInput(in); err != nil {
		h.writeErrorDetails(w, "Please choose a facility type, threat level, and coverage area.", err.Error(), http.StatusBadRequest)
		return
	}

	h.recommend(w, in)
}

// GetRecommendation generates a recommendation from query parameters,
// which keeps results linkable.
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, err := services.ParseConfigurationInput(q.Get("facility_type"), q.Get("threat_level"), q.Get("coverage_area"))
	if err != nil {
		h.writeErrorDetails(w, "Please choose a facility type, threat level, and coverage area.", err.Error(), http.StatusBadRequest)
		return
	}

	h.recommend(w, in)
}

func (h *Handler) recommend(w http.ResponseWriter, in models.ConfigurationInput) {
	rec := h.engine.Generate(in.FacilityType, in.ThreatLevel, in.CoverageArea)
	h.metrics.RecordRecommendation(rec)
	h.writeJSON(w, http.StatusOK, rec)
}

// GetMatrix returns a summary of every input combination. The build is
// shared by concurrent callers and cached for CACHE_TTL seconds.
func (h *Handler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	// A cancelled first caller must not fail the callers sharing its build.
	ctx := context.WithoutCancel(r.Context())

	resp, hit, err := h.matrix.GetOrLoad(matrixCacheKey, func() (models.MatrixResponse, error) {
		return h.buildMatrix(ctx)
	})
	if err != nil {
		slog.Error("Matrix build failed", "error", err)
		h.writeError(w, "Failed to build the recommendation matrix", http.StatusInternalServerError)
		return
	}

	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) buildMatrix(ctx context.Context) (models.MatrixResponse, error) {
	start := time.Now()
	h.metrics.MatrixBuildsTotal.Inc()

	entries, err := h.engine.BuildMatrix(ctx, h.cfg.MatrixConcurrency)
	if err != nil {
		return models.MatrixResponse{}, err
	}

	resp := models.MatrixResponse{
		Entries:     entries,
		Total:       len(entries),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, e := range entries {
		if e.IsValid {
			resp.ValidCount++
		}
	}

	slog.Info("Recommendation matrix built",
		"entries", resp.Total,
		"valid", resp.ValidCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
