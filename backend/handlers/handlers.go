// ABOUTME: HTTP handlers for the product stack configurator API
// ABOUTME: Shared handler state plus JSON response helpers

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Atlas00000/terra-client/backend/cache"
	"github.com/Atlas00000/terra-client/backend/config"
	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/backend/services"
)

// maxRequestBodySize caps JSON request bodies.
const maxRequestBodySize = 64 << 10

const matrixCacheKey = "matrix:all"

type Handler struct {
	cfg     *config.Config
	engine  *services.Engine
	matrix  *cache.Cache[models.MatrixResponse]
	store   *services.InquiryStore
	metrics *services.Metrics

	// ownsMatrix is set when NewHandler created the cache and must close it
	ownsMatrix bool
}

// NewHandler wires the handler dependencies. A nil engine, cache or metrics
// gets a default; a nil store disables the lead-capture endpoints.
// A cache created here belongs to the handler and is stopped by Close.
func NewHandler(cfg *config.Config, engine *services.Engine, matrix *cache.Cache[models.MatrixResponse], store *services.InquiryStore, metrics *services.Metrics) *Handler {
	if cfg == nil {
		cfg = &config.Config{MatrixConcurrency: 8}
	}
	if engine == nil {
		engine = services.NewEngine(services.DefaultTuning())
	}
	ownsMatrix := false
	if matrix == nil {
		matrix = cache.New[models.MatrixResponse](time.Duration(cfg.CacheTTL) * time.Second)
		ownsMatrix = true
	}
	if metrics == nil {
		metrics = services.NewMetrics()
	}
	return &Handler{
		cfg:     cfg,
		engine:  engine,
		matrix:  matrix,
		store:   store,
		metrics: metrics,

		ownsMatrix: ownsMatrix,
	}
}

// Close stops the matrix cache if the handler created it.
// Caches and stores passed in by the caller are left to the caller.
func (h *Handler) Close() {
	if h.ownsMatrix {
		h.matrix.Close()
	}
}

// writeJSON writes data as JSON with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeError writes an ErrorResponse whose message is safe to show users.
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

// writeErrorDetails is writeError with an extra machine-oriented detail.
func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Details: details,
		Code:    code,
	})
}
