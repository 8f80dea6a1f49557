// ABOUTME: Validator checking recommendations against facility requirements
// ABOUTME: Hard errors block validity; soft warnings are advisory

package services

import (
	"fmt"

	"github.com/Atlas00000/terra-client/backend/models"
)

// Validator checks a recommendation against its facility table
type Validator struct {
	tuning Tuning
}

// NewValidator creates a validator bound to a tuning table
func NewValidator(tuning Tuning) *Validator {
	return &Validator{tuning: tuning}
}

// Validate returns errors for missing ArtemisOS or sub-minimum coverage and warnings for everything else
func (v *Validator) Validate(rec models.ProductRecommendation) models.ValidationResult {
	req := models.Facilities[rec.FacilityType]
	errs := []string{}
	warnings := []string{}

	if !rec.Has(models.ProductArtemisOS) {
		errs = append(errs, "ArtemisOS platform is required in every configuration")
	}

	total := v.tuning.ActualCoverage(rec.Products)
	if total < req.MinCoverageKm {
		errs = append(errs, fmt.Sprintf("Total coverage %.1f km is below the %.0f km minimum for %s",
			total, req.MinCoverageKm, models.FacilityLabels[rec.FacilityType]))
	}

	for _, row := range req.Products {
		qty := rec.Quantity(row.Product)
		if row.Priority == models.PriorityEssential && !rec.Has(row.Product) {
			warnings = append(warnings, fmt.Sprintf("Essential product %s is missing", row.Product))
			continue
		}
		if rec.Has(row.Product) && (qty < row.MinQuantity || qty > row.MaxQuantity) {
			warnings = append(warnings, fmt.Sprintf("%s quantity %d is outside the recommended range %d-%d",
				row.Product, qty, row.MinQuantity, row.MaxQuantity))
		}
	}

	if rec.Has(models.ProductKallon) {
		kallonKm := float64(rec.Quantity(models.ProductKallon)) * v.tuning.EffectiveRange(models.ProductKallon)
		if kallonKm < rec.RequiredCoverageKm {
			warnings = append(warnings, fmt.Sprintf("Kallon towers cover %.1f km of the %.1f km required; mobile assets must close the gap",
				kallonKm, rec.RequiredCoverageKm))
		}
	}

	if rec.Quantity(models.ProductArcher) > 3 && rec.Quantity(models.ProductIroko) > 3 {
		warnings = append(warnings, "Large Archer and Iroko fleets together: consider consolidating UAV types")
	}

	if req.ThreatRank(rec.ThreatLevel) < 0 {
		warnings = append(warnings, fmt.Sprintf("%s is not a priority for this facility type",
			models.ThreatLabels[rec.ThreatLevel]))
	}
	for _, expected := range models.ThreatExpectedProducts[rec.ThreatLevel] {
		if !rec.Has(expected) {
			warnings = append(warnings, fmt.Sprintf("%s usually calls for %s, which is not in this stack",
				models.ThreatLabels[rec.ThreatLevel], expected))
		}
	}

	return models.ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
