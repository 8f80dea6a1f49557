// ABOUTME: Tests for the leads command
// ABOUTME: Verifies flag validation, token handling, and table output

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/client"
)

func sampleLeads() client.LeadList {
	created := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	return client.LeadList{
		Leads: []models.Inquiry{
			{
				ID: "7d9f3c52-0b1e-4a8e-9e55-3c2f1a6b8d01", Kind: models.InquiryKindRFQ, CreatedAt: created,
				Payload: json.RawMessage(`{"email":"ops@example.com","configuration":{"facility_type":"mining","threat_level":"rapid-response","coverage_area":"0-5km"}}`),
			},
			{
				ID: "1c4a7e20-55b3-4f0d-8a61-9b2e7c3d4f02", Kind: models.InquiryKindGeneral, CreatedAt: created,
				Payload: json.RawMessage(`{"name":"Kemi","message":"Do you ship\nto Lagos?"}`),
			},
		},
		Count: 2,
	}
}

func setLeadsFlags(t *testing.T, kind string, limit int, token string) {
	t.Helper()
	leadsKind, leadsLimit, leadsToken = kind, limit, token
	t.Cleanup(func() { leadsKind, leadsLimit, leadsToken = "", 20, "" })
}

func TestFormatLeadsHuman(t *testing.T) {
	leads := sampleLeads()
	output := formatLeadsHuman(&leads)

	for _, want := range []string{
		"ops@example.com",
		"mining / rapid-response / 0-5km",
		"Kemi",
		"Do you ship to Lagos?",
		"2 submission(s)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestFormatLeadsHuman_Empty(t *testing.T) {
	if got := formatLeadsHuman(&client.LeadList{}); got != "No submissions found." {
		t.Errorf("unexpected empty output %q", got)
	}
}

func TestSummarizePayload(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantContact string
		wantSubject string
	}{
		{"email wins over name", `{"name":"A","email":"a@example.com","message":"hi"}`, "a@example.com", "hi"},
		{"no contact", `{"message":"hi"}`, "-", "hi"},
		{"long message truncated", `{"message":"` + strings.Repeat("x", 60) + `"}`, "-", strings.Repeat("x", 39) + "…"},
		{"nothing useful", `{"other":1}`, "-", "-"},
		{"not an object", `[1,2]`, "-", "(unreadable payload)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact, subject := summarizePayload(json.RawMessage(tt.payload))
			if contact != tt.wantContact || subject != tt.wantSubject {
				t.Errorf("got (%q, %q), want (%q, %q)", contact, subject, tt.wantContact, tt.wantSubject)
			}
		})
	}
}

func TestLeadsCommand_FlagErrors(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		limit int
		token string
		want  string
	}{
		{"unknown kind", "spam", 20, "tok", "--kind must be one of"},
		{"limit too small", "", 0, "tok", "--limit must be between"},
		{"limit too large", "", 501, "tok", "--limit must be between"},
		{"missing token", "", 20, "", "staff token is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERRA_LEADS_TOKEN", "")
			setLeadsFlags(t, tt.kind, tt.limit, tt.token)

			var buf bytes.Buffer
			if exitCode := runLeads(context.Background(), &buf); exitCode != 2 {
				t.Errorf("expected exit code 2, got %d", exitCode)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestLeadsCommand_UsesEnvTokenAndPrintsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer env-token" {
			t.Errorf("expected env token, got %q", got)
		}
		if got := r.URL.Query().Get("kind"); got != "rfq" {
			t.Errorf("expected kind=rfq, got %q", got)
		}
		json.NewEncoder(w).Encode(sampleLeads())
	}))
	defer server.Close()

	apiURL = server.URL
	jsonOutput = true
	defer func() { apiURL, jsonOutput = "", false }()
	t.Setenv("TERRA_LEADS_TOKEN", "env-token")
	setLeadsFlags(t, "rfq", 10, "")

	var buf bytes.Buffer
	if exitCode := runLeads(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}

	var got client.LeadList
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if got.Count != 2 {
		t.Errorf("expected 2 leads, got %d", got.Count)
	}
}

func TestLeadsCommand_UnauthorizedExitsTwo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "A valid bearer token is required", Code: 401})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	setLeadsFlags(t, "", 20, "wrong")

	var buf bytes.Buffer
	if exitCode := runLeads(context.Background(), &buf); exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "valid bearer token") {
		t.Errorf("expected server message, got %q", buf.String())
	}
}
