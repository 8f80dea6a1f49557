// ABOUTME: Tests for the matrix command
// ABOUTME: Verifies table output, filtering, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/client"
)

func matrixServer(t *testing.T, resp client.MatrixResponse) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/configurator/matrix" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func sampleMatrix() client.MatrixResponse {
	return client.MatrixResponse{
		Entries: []models.MatrixEntry{
			{
				FacilityType: models.FacilityMining, ThreatLevel: models.ThreatRapidResponse,
				CoverageArea: models.Coverage0To5km, TotalUnits: 7, OverallScore: 81,
				ScoreConfidence: models.ConfidenceMedium, ExplainConfidence: models.ConfidenceHigh, IsValid: true,
			},
			{
				FacilityType: models.FacilityTelecommunications, ThreatLevel: models.ThreatMultiThreat,
				CoverageArea: models.Coverage50kmPlus, TotalUnits: 40, OverallScore: 58,
				ScoreConfidence: models.ConfidenceLow, ExplainConfidence: models.ConfidenceMedium, IsValid: false,
			},
		},
		Total:       2,
		ValidCount:  1,
		GeneratedAt: "2026-01-02T03:04:05Z",
	}
}

func TestFormatMatrixHuman(t *testing.T) {
	resp := sampleMatrix()
	output := formatMatrixHuman(&resp)

	if !strings.Contains(output, "FACILITY") {
		t.Error("expected header row")
	}
	if !strings.Contains(output, "telecommunications") {
		t.Error("expected telecommunications row")
	}
	if !strings.Contains(output, "1 of 2 configuration(s) valid") {
		t.Errorf("expected summary line, got:\n%s", output)
	}
}

func TestMatrixCommand_InvalidEntriesExitOne(t *testing.T) {
	server := matrixServer(t, sampleMatrix())
	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if exitCode := runMatrix(context.Background(), &buf); exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
}

func TestMatrixCommand_AllValidExitsZero(t *testing.T) {
	resp := sampleMatrix()
	resp.Entries = resp.Entries[:1]
	resp.Total, resp.ValidCount = 1, 1
	server := matrixServer(t, resp)
	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if exitCode := runMatrix(context.Background(), &buf); exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
}

func TestMatrixCommand_InvalidOnly(t *testing.T) {
	server := matrixServer(t, sampleMatrix())
	apiURL = server.URL
	invalidOnly = true
	jsonOutput = true
	defer func() {
		apiURL = ""
		invalidOnly = false
		jsonOutput = false
	}()

	var buf bytes.Buffer
	runMatrix(context.Background(), &buf)

	var parsed client.MatrixResponse
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Entries) != 1 {
		t.Fatalf("expected 1 invalid entry, got %d", len(parsed.Entries))
	}
	if parsed.Entries[0].FacilityType != models.FacilityTelecommunications {
		t.Errorf("expected telecommunications entry, got %s", parsed.Entries[0].FacilityType)
	}
	if parsed.Total != 2 {
		t.Errorf("expected total to stay 2, got %d", parsed.Total)
	}
}

func TestMatrixCommand_ConnectionError(t *testing.T) {
	apiURL = "http://localhost:99999"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if exitCode := runMatrix(context.Background(), &buf); exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}
