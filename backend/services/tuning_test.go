// ABOUTME: Tests for the engine tuning table
// ABOUTME: Defaults, YAML overrides, and bounds validation

package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Atlas00000/terra-client/backend/models"
)

func TestDefaultTuning_EffectiveRanges(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		product models.ProductName
		want    float64
	}{
		{models.ProductKallon, 4},
		{models.ProductIroko, 8.5},
		{models.ProductArcher, 12.75},
		{models.ProductDuma, 21.25},
		{models.ProductArtemisOS, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.product), func(t *testing.T) {
			if got := tuning.EffectiveRange(tt.product); !approxEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDefaultTuning_Valid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestParseTuning_Overrides(t *testing.T) {
	data := []byte(`
overlap:
  tower: 0.25
redundancy:
  Archer: 0.4
priority_bonus: 1.3
`)
	tuning, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tuning.Overlap[models.FamilyTower] != 0.25 {
		t.Errorf("Expected tower overlap 0.25, got %v", tuning.Overlap[models.FamilyTower])
	}
	if tuning.Overlap[models.FamilyUAV] != 0.15 {
		t.Errorf("Expected UAV overlap to keep default 0.15, got %v", tuning.Overlap[models.FamilyUAV])
	}
	if tuning.Redundancy[models.ProductArcher] != 0.4 {
		t.Errorf("Expected Archer redundancy 0.4, got %v", tuning.Redundancy[models.ProductArcher])
	}
	if tuning.Redundancy[models.ProductKallon] != 0.2 {
		t.Errorf("Expected Kallon redundancy to keep default 0.2, got %v", tuning.Redundancy[models.ProductKallon])
	}
	if tuning.PriorityBonus != 1.3 {
		t.Errorf("Expected priority bonus 1.3, got %v", tuning.PriorityBonus)
	}
	if tuning.RapidResponseMinimum != 2 {
		t.Errorf("Expected rapid response minimum to keep default 2, got %d", tuning.RapidResponseMinimum)
	}
}

func TestParseTuning_PartialWeightsKeepDefaults(t *testing.T) {
	tuning, err := ParseTuning([]byte("weights:\n  coverage: 0.2\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := DefaultTuning().Weights
	want.Coverage = 0.2
	if tuning.Weights != want {
		t.Errorf("Expected weights %+v, got %+v", want, tuning.Weights)
	}
}

func TestParseTuning_ExplicitZeroOverrides(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(Tuning) bool
	}{
		{"rapid response minimum", "rapid_response_minimum: 0\n", func(tu Tuning) bool { return tu.RapidResponseMinimum == 0 }},
		{"recommended threshold", "recommended_threshold: 0\n", func(tu Tuning) bool { return tu.RecommendedThreshold == 0 }},
		{"compatibility weight", "weights:\n  compatibility: 0\n", func(tu Tuning) bool {
			return tu.Weights.Compatibility == 0 && tu.Weights.Coverage == 0.30
		}},
		{"redundancy fraction", "redundancy:\n  Archer: 0\n", func(tu Tuning) bool { return tu.Redundancy[models.ProductArcher] == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning, err := ParseTuning([]byte(tt.data))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !tt.check(tuning) {
				t.Errorf("Expected explicit zero to apply, got %+v", tuning)
			}
		})
	}
}

func TestParseTuning_Empty(t *testing.T) {
	tuning, err := ParseTuning(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tuning.LargeAreaSurcharge != 1.3 {
		t.Errorf("Expected default surcharge, got %v", tuning.LargeAreaSurcharge)
	}
}

func TestParseTuning_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"unknown field", "overlaps:\n  tower: 0.1\n", "parsing tuning file"},
		{"overlap out of range", "overlap:\n  uav: 1.0\n", "overlap for uav"},
		{"rotation below one", "rotation:\n  Iroko: 0.5\n", "rotation for Iroko"},
		{"weights too heavy", "weights:\n  coverage: 0.9\n  threat: 0.5\n", "sum to at most 1"},
		{"single weight raised past the total", "weights:\n  coverage: 0.4\n", "sum to at most 1"},
		{"negative threshold", "recommended_threshold: -1\n", "recommended_threshold"},
		{"malformed yaml", "overlap: [", "parsing tuning file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		tuning, err := LoadTuning("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if tuning.RecommendedThreshold != 1.2 {
			t.Errorf("Expected default threshold, got %v", tuning.RecommendedThreshold)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("file overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte("large_area_surcharge: 1.5\n"), 0600); err != nil {
			t.Fatal(err)
		}
		tuning, err := LoadTuning(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if tuning.LargeAreaSurcharge != 1.5 {
			t.Errorf("Expected surcharge 1.5, got %v", tuning.LargeAreaSurcharge)
		}
	})
}

func TestTuning_FlowsIntoEngine(t *testing.T) {
	tuning := DefaultTuning()
	tuning.RapidResponseMinimum = 4

	rec := NewEngine(tuning).Generate(models.FacilitySubstation, models.ThreatRapidResponse, models.Coverage0To5km)
	// forced minimum 4, plus ceil(4 x 0.5) = 2, clamped to the table max of 4
	if got := rec.Quantity(models.ProductArcher); got != 4 {
		t.Errorf("Expected Archer 4, got %d", got)
	}
}
