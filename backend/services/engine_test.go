// ABOUTME: Tests for the recommendation engine
// ABOUTME: Reference scenarios, selection gate, clamping, and output assembly

package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Atlas00000/terra-client/backend/models"
)

func quantities(rec models.ProductRecommendation) map[models.ProductName]int {
	q := make(map[models.ProductName]int)
	for _, p := range rec.Products {
		q[p.Name] = p.Quantity
	}
	return q
}

func hasWarning(v *models.ValidationResult, substr string) bool {
	for _, w := range v.Warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestGenerate_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		facility models.FacilityType
		threat   models.ThreatLevel
		area     models.CoverageArea
		want     map[models.ProductName]int
	}{
		{
			name:     "power plant surveillance applies Iroko rotation",
			facility: models.FacilityPowerPlant,
			threat:   models.ThreatSurveillanceMonitoring,
			area:     models.Coverage5To15km,
			want: map[models.ProductName]int{
				models.ProductArtemisOS: 1, models.ProductKallon: 5, models.ProductIroko: 8, models.ProductArcher: 3,
			},
		},
		{
			name:     "substation rapid response forces Archer minimum plus redundancy",
			facility: models.FacilitySubstation,
			threat:   models.ThreatRapidResponse,
			area:     models.Coverage0To5km,
			want: map[models.ProductName]int{
				models.ProductArtemisOS: 1, models.ProductKallon: 3, models.ProductArcher: 3, models.ProductIroko: 3,
			},
		},
		{
			name:     "border security multi-threat includes every field product",
			facility: models.FacilityBorderSecurity,
			threat:   models.ThreatMultiThreat,
			area:     models.Coverage50kmPlus,
			want: map[models.ProductName]int{
				models.ProductArtemisOS: 1, models.ProductKallon: 20, models.ProductIroko: 16,
				models.ProductDuma: 8, models.ProductArcher: 8,
			},
		},
		{
			name:     "mining rapid response",
			facility: models.FacilityMining,
			threat:   models.ThreatRapidResponse,
			area:     models.Coverage0To5km,
			want: map[models.ProductName]int{
				models.ProductArtemisOS: 1, models.ProductKallon: 4, models.ProductDuma: 4, models.ProductIroko: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := GenerateRecommendation(tt.facility, tt.threat, tt.area)
			got := quantities(rec)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGenerate_ArtemisOSFirstWithQuantityOne(t *testing.T) {
	rec := GenerateRecommendation(models.FacilityOilGas, models.ThreatPerimeterSecurity, models.Coverage15To50km)

	if len(rec.Products) == 0 {
		t.Fatal("Expected products, got none")
	}
	if rec.Products[0].Name != models.ProductArtemisOS || rec.Products[0].Quantity != 1 {
		t.Errorf("Expected ArtemisOS x1 first, got %+v", rec.Products[0])
	}
	count := 0
	for _, p := range rec.Products {
		if p.Name == models.ProductArtemisOS {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one ArtemisOS entry, got %d", count)
	}
}

func TestGenerate_ScenarioFourWarnsButStaysValid(t *testing.T) {
	rec := GenerateRecommendation(models.FacilityMining, models.ThreatRapidResponse, models.Coverage0To5km)

	if rec.Validation == nil {
		t.Fatal("Expected validation attached")
	}
	if !rec.Validation.IsValid {
		t.Errorf("Expected valid recommendation, got errors %v", rec.Validation.Errors)
	}
	if !hasWarning(rec.Validation, "not a priority for this facility type") {
		t.Errorf("Expected not-a-priority warning, got %v", rec.Validation.Warnings)
	}
	if !hasWarning(rec.Validation, "Archer") {
		t.Errorf("Expected missing Archer warning, got %v", rec.Validation.Warnings)
	}
}

func TestGenerate_OptionalProductsNeverIncluded(t *testing.T) {
	for _, f := range models.AllFacilityTypes {
		req := models.Facilities[f]
		for _, row := range req.Products {
			if row.Priority != models.PriorityOptional {
				continue
			}
			for _, th := range models.AllThreatLevels {
				for _, a := range models.AllCoverageAreas {
					rec := GenerateRecommendation(f, th, a)
					if rec.Has(row.Product) {
						t.Errorf("%s/%s/%s: optional %s should not be included", f, th, a, row.Product)
					}
				}
			}
		}
	}
}

func TestGenerate_RecommendedGate(t *testing.T) {
	// intrusion at telecom: multiplier 1.2 and listed priority, Iroko admitted
	rec := GenerateRecommendation(models.FacilityTelecommunications, models.ThreatIntrusionDetection, models.Coverage0To5km)
	if !rec.Has(models.ProductIroko) {
		t.Error("Expected recommended Iroko to be included")
	}

	// surveillance at substation: multiplier 1.1 and not a listed priority
	rec = GenerateRecommendation(models.FacilitySubstation, models.ThreatSurveillanceMonitoring, models.Coverage0To5km)
	if rec.Has(models.ProductArcher) || rec.Has(models.ProductIroko) {
		t.Errorf("Expected recommended products to be gated out, got %v", quantities(rec))
	}
}

func TestGenerate_ClampsToMaximum(t *testing.T) {
	rec := GenerateRecommendation(models.FacilityIndustrialComplex, models.ThreatIntrusionDetection, models.Coverage15To50km)

	// Duma computes 82 before clamping to the table maximum
	if got := rec.Quantity(models.ProductDuma); got != 4 {
		t.Errorf("Expected Duma clamped to 4, got %d", got)
	}
}

func TestGenerate_DescriptionCountsExcludePlatform(t *testing.T) {
	rec := GenerateRecommendation(models.FacilityPowerPlant, models.ThreatSurveillanceMonitoring, models.Coverage5To15km)

	if !strings.Contains(rec.Description, "3-product stack of 16 field units") {
		t.Errorf("Expected product and unit counts in description, got %q", rec.Description)
	}
	if !strings.Contains(rec.Description, "power generation facilities") {
		t.Errorf("Expected facility phrase in description, got %q", rec.Description)
	}
}

func TestGenerate_ResponseTimes(t *testing.T) {
	rec := GenerateRecommendation(models.FacilitySubstation, models.ThreatRapidResponse, models.Coverage0To5km)

	if len(rec.ResponseTimes) != len(rec.Products) {
		t.Fatalf("Expected %d response times, got %d", len(rec.Products), len(rec.ResponseTimes))
	}
	if rec.ResponseTimes[0].Product != models.ProductArtemisOS || rec.ResponseTimes[0].Time != "<1 second" {
		t.Errorf("Expected ArtemisOS <1 second first, got %+v", rec.ResponseTimes[0])
	}
	for _, rt := range rec.ResponseTimes {
		if rt.Product == models.ProductArcher && rt.Time != "<5 minutes" {
			t.Errorf("Expected Archer <5 minutes, got %s", rt.Time)
		}
	}
}

func TestGenerate_AttachesAllLayers(t *testing.T) {
	rec := GenerateRecommendation(models.FacilityCritical, models.ThreatMultiThreat, models.Coverage5To15km)

	if rec.Validation == nil || rec.Score == nil || rec.Explanation == nil {
		t.Fatalf("Expected validation, score, and explanation, got %+v", rec)
	}
	if rec.RequiredCoverageKm != 15 {
		t.Errorf("Expected required coverage 15, got %v", rec.RequiredCoverageKm)
	}
	if rec.FacilityType != models.FacilityCritical || rec.ThreatLevel != models.ThreatMultiThreat {
		t.Errorf("Expected inputs echoed, got %s/%s", rec.FacilityType, rec.ThreatLevel)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	engine := NewEngine(DefaultTuning())
	a := engine.Generate(models.FacilityBorderSecurity, models.ThreatMultiThreat, models.Coverage50kmPlus)
	b := engine.Generate(models.FacilityBorderSecurity, models.ThreatMultiThreat, models.Coverage50kmPlus)

	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical recommendations for identical inputs")
	}
}

func TestGenerate_NoErrorsAcrossAllConfigurations(t *testing.T) {
	for _, cfg := range AllConfigurations() {
		rec := GenerateRecommendation(cfg.FacilityType, cfg.ThreatLevel, cfg.CoverageArea)
		if !rec.Validation.IsValid {
			t.Errorf("%+v: unexpected errors %v", cfg, rec.Validation.Errors)
		}
	}
}

func TestGenerate_KallonMonotonicInCoverage(t *testing.T) {
	for _, f := range models.AllFacilityTypes {
		for _, th := range models.AllThreatLevels {
			prev := 0
			for _, a := range models.AllCoverageAreas {
				q := GenerateRecommendation(f, th, a).Quantity(models.ProductKallon)
				if q < prev {
					t.Errorf("%s/%s: Kallon dropped from %d to %d at %s", f, th, prev, q, a)
				}
				prev = q
			}
		}
	}
}
