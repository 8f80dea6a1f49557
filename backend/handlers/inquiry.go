// ABOUTME: HTTP handlers for lead-capture submissions
// ABOUTME: Persists quote requests and general inquiries as free-form JSON

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Atlas00000/terra-client/backend/middleware"
	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/backend/services"
)

// SubmitRFQ stores a request for quotation.
func (h *Handler) SubmitRFQ(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.InquiryKindRFQ, "Thank you. Our team will prepare your quote and contact you shortly.")
}

// SubmitInquiry stores a general contact inquiry.
func (h *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, models.InquiryKindGeneral, "Thank you for reaching out. We will get back to you soon.")
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, kind models.InquiryKind, thanks string) {
	if h.store == nil {
		h.writeError(w, "Submissions are temporarily unavailable. Please try again later.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Could not read the submission", http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	inq, err := h.store.Save(r.Context(), kind, body)
	if err != nil {
		if errors.Is(err, services.ErrEmptyPayload) {
			h.writeError(w, "Please fill in the form before submitting.", http.StatusBadRequest)
			return
		}
		slog.Error("Failed to store submission",
			"kind", kind,
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		h.writeError(w, "We could not save your submission. Please try again.", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordInquiry(kind)
	slog.Info("Submission stored", "kind", kind, "id", inq.ID)

	h.writeJSON(w, http.StatusCreated, models.InquiryResponse{ID: inq.ID, Message: thanks})
}
