// ABOUTME: Tests for the threat analyzer
// ABOUTME: Verifies priority bonus, flags, and priority product lists

package services

import (
	"math"
	"strings"
	"testing"

	"github.com/Atlas00000/terra-client/backend/models"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeThreat_PriorityBonus(t *testing.T) {
	tests := []struct {
		name     string
		threat   models.ThreatLevel
		facility models.FacilityType
		want     float64
	}{
		{"top priority gets bonus", models.ThreatRapidResponse, models.FacilitySubstation, 1.56},
		{"second priority no bonus", models.ThreatIntrusionDetection, models.FacilitySubstation, 1.0},
		{"unlisted no bonus", models.ThreatRapidResponse, models.FacilityMining, 1.3},
		{"intrusion top at power plant", models.ThreatIntrusionDetection, models.FacilityPowerPlant, 1.2},
		{"multi-threat top at critical", models.ThreatMultiThreat, models.FacilityCritical, 1.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := AnalyzeThreat(tt.threat, tt.facility)
			if !approxEqual(p.Multiplier, tt.want) {
				t.Errorf("Expected multiplier %v, got %v", tt.want, p.Multiplier)
			}
		})
	}
}

func TestAnalyzeThreat_Flags(t *testing.T) {
	p := AnalyzeThreat(models.ThreatPerimeterSecurity, models.FacilityOilGas)

	if p.Level != models.ThreatPerimeterSecurity {
		t.Errorf("Expected level perimeter-security, got %s", p.Level)
	}
	if !p.RequiresRedundancy {
		t.Error("Expected redundancy required")
	}
	if !p.Requires24x7 {
		t.Error("Expected 24/7 required")
	}
	if p.Intensity != 0.7 {
		t.Errorf("Expected intensity 0.7, got %v", p.Intensity)
	}
	if len(p.PriorityProducts) != 3 || p.PriorityProducts[0] != models.ProductKallon {
		t.Errorf("Expected Kallon-led priority products, got %v", p.PriorityProducts)
	}
	if len(p.Reasoning) < 3 {
		t.Errorf("Expected reasoning for base, bonus, and flags, got %v", p.Reasoning)
	}
}

func TestAnalyzeThreat_ReasoningMentionsBonus(t *testing.T) {
	p := AnalyzeThreat(models.ThreatRapidResponse, models.FacilitySubstation)

	found := false
	for _, r := range p.Reasoning {
		if strings.Contains(r, "top threat priority") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected bonus reasoning, got %v", p.Reasoning)
	}
}

func TestAnalyzeThreat_DoesNotShareTableSlices(t *testing.T) {
	p := AnalyzeThreat(models.ThreatIntrusionDetection, models.FacilityMining)
	p.PriorityProducts[0] = models.ProductDuma

	if models.ThreatTraitsTable[models.ThreatIntrusionDetection].PriorityProducts[0] != models.ProductKallon {
		t.Error("Expected knowledge base to be unchanged after mutating a profile")
	}
}

func TestTuning_AnalyzeThreat_CustomBonus(t *testing.T) {
	tuning := DefaultTuning()
	tuning.PriorityBonus = 1.5

	p := tuning.AnalyzeThreat(models.ThreatIntrusionDetection, models.FacilityPowerPlant)
	if !approxEqual(p.Multiplier, 1.5) {
		t.Errorf("Expected multiplier 1.5, got %v", p.Multiplier)
	}
}
