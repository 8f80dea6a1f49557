// ABOUTME: Tests for the lead listing handler
// ABOUTME: Token checks, kind and limit filters, and the disabled default

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Atlas00000/terra-client/backend/models"
)

const testLeadsToken = "sales-team-token-0001"

func newLeadsHandler(t *testing.T) *Handler {
	t.Helper()
	h := newTestHandler(t)
	h.cfg.LeadsAPIToken = testLeadsToken

	for _, sub := range []struct {
		submit func(http.ResponseWriter, *http.Request)
		body   string
	}{
		{h.SubmitRFQ, `{"email":"first@example.com"}`},
		{h.SubmitInquiry, `{"message":"hello"}`},
		{h.SubmitRFQ, `{"email":"second@example.com"}`},
	} {
		w := httptest.NewRecorder()
		sub.submit(w, httptest.NewRequest(http.MethodPost, "/api/v1/rfq", strings.NewReader(sub.body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("Seeding submission failed: %d %s", w.Code, w.Body.String())
		}
	}
	return h
}

func getLeads(h *Handler, query, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads"+query, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	h.ListLeads(w, req)
	return w
}

func TestListLeads_ReturnsStoredSubmissions(t *testing.T) {
	h := newLeadsHandler(t)

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantKind  models.InquiryKind
	}{
		{"all kinds", "", 3, ""},
		{"rfq only", "?kind=rfq", 2, models.InquiryKindRFQ},
		{"general only", "?kind=inquiry", 1, models.InquiryKindGeneral},
		{"limited", "?limit=1", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getLeads(h, tt.query, "Bearer "+testLeadsToken)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
			}

			var resp models.LeadList
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Count != tt.wantCount || len(resp.Leads) != tt.wantCount {
				t.Errorf("Expected %d leads, got count=%d len=%d", tt.wantCount, resp.Count, len(resp.Leads))
			}
			for _, lead := range resp.Leads {
				if tt.wantKind != "" && lead.Kind != tt.wantKind {
					t.Errorf("Expected kind %s, got %s", tt.wantKind, lead.Kind)
				}
			}
		})
	}
}

func TestListLeads_Rejections(t *testing.T) {
	h := newLeadsHandler(t)

	tests := []struct {
		name       string
		query      string
		auth       string
		wantStatus int
	}{
		{"missing token", "", "", http.StatusUnauthorized},
		{"wrong token", "", "Bearer not-the-right-token", http.StatusUnauthorized},
		{"basic scheme", "", "Basic " + testLeadsToken, http.StatusUnauthorized},
		{"unknown kind", "?kind=spam", "Bearer " + testLeadsToken, http.StatusBadRequest},
		{"zero limit", "?limit=0", "Bearer " + testLeadsToken, http.StatusBadRequest},
		{"limit too large", "?limit=501", "Bearer " + testLeadsToken, http.StatusBadRequest},
		{"non-numeric limit", "?limit=ten", "Bearer " + testLeadsToken, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getLeads(h, tt.query, tt.auth)
			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil || resp.Message == "" {
				t.Errorf("Expected an error message, got %q (%v)", resp.Message, err)
			}
		})
	}
}

func TestListLeads_DisabledWithoutToken(t *testing.T) {
	h := newTestHandler(t)

	w := getLeads(h, "", "Bearer anything-at-all-here")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestListLeads_NoStore(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil)
	t.Cleanup(h.Close)
	h.cfg.LeadsAPIToken = testLeadsToken

	w := getLeads(h, "", "Bearer "+testLeadsToken)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}
