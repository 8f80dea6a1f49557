// ABOUTME: HTTP handler listing stored submissions for sales staff
// ABOUTME: Guarded by a bearer token and disabled when no token is configured

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Atlas00000/terra-client/backend/middleware"
	"github.com/Atlas00000/terra-client/backend/models"
)

const (
	defaultLeadLimit = 50
	maxLeadLimit     = 500
)

// ListLeads returns stored quote requests and inquiries, newest first.
// Query parameters: kind (rfq or inquiry, optional) and limit (1-500).
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	if h.cfg.LeadsAPIToken == "" {
		h.writeError(w, "Lead listing is not enabled", http.StatusNotFound)
		return
	}
	if !h.authorizedForLeads(r) {
		w.Header().Set("WWW-Authenticate", `Bearer realm="leads"`)
		h.writeError(w, "A valid bearer token is required", http.StatusUnauthorized)
		return
	}
	if h.store == nil {
		h.writeError(w, "Lead storage is not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	kind := models.InquiryKind(strings.TrimSpace(q.Get("kind")))
	if kind != "" && !kind.Valid() {
		h.writeError(w, "kind must be rfq or inquiry", http.StatusBadRequest)
		return
	}

	limit := defaultLeadLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLeadLimit {
			h.writeError(w, "limit must be a number between 1 and 500", http.StatusBadRequest)
			return
		}
		limit = n
	}

	leads, err := h.store.List(r.Context(), kind, limit)
	if err != nil {
		slog.Error("Failed to list submissions",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		h.writeError(w, "Could not load submissions", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, models.LeadList{Leads: leads, Count: len(leads)})
}

func (h *Handler) authorizedForLeads(r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.cfg.LeadsAPIToken)) == 1
}
