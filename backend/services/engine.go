// ABOUTME: Recommendation engine assembling product stacks from wizard answers
// ABOUTME: Gates, sizes, and clamps each product, then validates, scores, and explains

package services

import (
	"fmt"
	"log/slog"

	"github.com/Atlas00000/terra-client/backend/models"
)

// Engine produces product recommendations. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	tuning     Tuning
	calculator *ProductCalculator
	validator  *Validator
	scorer     *Scorer
	explainer  *Explainer
}

// NewEngine creates an engine bound to a tuning table
func NewEngine(tuning Tuning) *Engine {
	return &Engine{
		tuning:     tuning,
		calculator: NewProductCalculator(tuning),
		validator:  NewValidator(tuning),
		scorer:     NewScorer(tuning),
		explainer:  NewExplainer(tuning),
	}
}

// Tuning returns the engine's tuning table
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// GenerateRecommendation runs the engine with the default tuning
func GenerateRecommendation(facility models.FacilityType, threat models.ThreatLevel, area models.CoverageArea) models.ProductRecommendation {
	return NewEngine(DefaultTuning()).Generate(facility, threat, area)
}

// Generate builds a fully populated recommendation for one configuration
// and logs each validation warning.
func (e *Engine) Generate(facility models.FacilityType, threat models.ThreatLevel, area models.CoverageArea) models.ProductRecommendation {
	rec := e.generate(facility, threat, area)
	for _, w := range rec.Validation.Warnings {
		slog.Warn("Recommendation warning", "facility", facility, "threat", threat, "coverage", area, "warning", w)
	}
	return rec
}

// generate is Generate without warn-level logging
func (e *Engine) generate(facility models.FacilityType, threat models.ThreatLevel, area models.CoverageArea) models.ProductRecommendation {
	req := models.Facilities[facility]
	profile := e.tuning.AnalyzeThreat(threat, facility)
	required := RequiredCoverage(area, threat)

	products := []models.ProductQuantity{{
		Name:       models.ProductArtemisOS,
		Quantity:   1,
		Capability: capability(models.ProductArtemisOS),
	}}

	for _, row := range req.Products {
		if row.Product == models.ProductArtemisOS {
			continue
		}
		if !e.shouldInclude(row, profile, req) {
			continue
		}

		result := e.calculator.Calculate(row.Product, CalculationInput{
			Facility:     facility,
			Threat:       threat,
			Area:         area,
			BaseQuantity: row.MinQuantity,
		})

		qty := result.Quantity
		if row.MaxQuantity > 0 && qty > row.MaxQuantity {
			qty = row.MaxQuantity
		}
		if qty <= 0 {
			continue
		}
		products = append(products, models.ProductQuantity{
			Name:       row.Product,
			Quantity:   qty,
			Capability: result.Capability,
		})
	}

	rec := models.ProductRecommendation{
		FacilityType:       facility,
		ThreatLevel:        threat,
		CoverageArea:       area,
		RequiredCoverageKm: required,
		Products:           products,
	}
	rec.Description = describe(rec)
	rec.ResponseTimes = responseTimes(products)

	validation := e.validator.Validate(rec)
	score := e.scorer.Score(rec, profile)
	explanation := e.explainer.Explain(rec, profile)
	rec.Validation = &validation
	rec.Score = &score
	rec.Explanation = &explanation

	slog.Debug("Generated recommendation",
		"facility", facility,
		"threat", threat,
		"coverage", area,
		"units", rec.TotalUnits(false),
		"score", score.Overall,
		"valid", validation.IsValid,
		"warnings", len(validation.Warnings),
	)

	return rec
}

// shouldInclude is the once-per-product selection gate.
// Optional rows are display-only and never admitted.
func (e *Engine) shouldInclude(row models.ProductRequirement, profile models.ThreatProfile, req models.FacilityRequirement) bool {
	switch row.Priority {
	case models.PriorityEssential:
		return true
	case models.PriorityRecommended:
		return profile.Multiplier >= e.tuning.RecommendedThreshold || req.ThreatRank(profile.Level) >= 0
	default:
		return false
	}
}

func describe(rec models.ProductRecommendation) string {
	types := len(rec.Products) - 1
	units := rec.TotalUnits(false)
	return fmt.Sprintf("A %d-product stack of %d field units, coordinated by ArtemisOS, delivering %s for %s across %s.",
		types, units,
		models.ThreatPhrases[rec.ThreatLevel],
		models.FacilityPhrases[rec.FacilityType],
		models.CoverageBuckets[rec.CoverageArea].Label,
	)
}

func responseTimes(products []models.ProductQuantity) []models.ResponseTime {
	times := make([]models.ResponseTime, 0, len(products))
	for _, p := range products {
		t := models.Products[p.Name].ResponseTime
		if p.Name == models.ProductArtemisOS {
			t = "<1 second"
		}
		times = append(times, models.ResponseTime{Product: p.Name, Time: t})
	}
	return times
}
