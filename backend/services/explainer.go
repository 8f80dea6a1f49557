// ABOUTME: Explainer producing human-readable reasoning for a recommendation
// ABOUTME: Per-product narratives, coverage-gap messages, and explanation confidence

package services

import (
	"fmt"

	"github.com/Atlas00000/terra-client/backend/models"
)

// overProvisionRatio is the coverage ratio above which a stack is called over-provisioned
const overProvisionRatio = 1.2

// Explainer turns a computed recommendation into prose
type Explainer struct {
	tuning Tuning
}

// NewExplainer creates an explainer bound to a tuning table
func NewExplainer(tuning Tuning) *Explainer {
	return &Explainer{tuning: tuning}
}

// Explain builds reasoning for every product plus overall coverage notes
func (x *Explainer) Explain(rec models.ProductRecommendation, profile models.ThreatProfile) models.Explanation {
	actual := x.tuning.ActualCoverage(rec.Products)
	required := rec.RequiredCoverageKm

	out := models.Explanation{
		Products:     make([]models.ProductExplanation, 0, len(rec.Products)),
		CoverageGaps: []string{},
	}
	for _, p := range rec.Products {
		out.Products = append(out.Products, models.ProductExplanation{
			Product:   p.Name,
			Quantity:  p.Quantity,
			Reasoning: x.productReasoning(rec, p, profile),
		})
	}

	ratio := 1.0
	if required > 0 {
		ratio = actual / required
	}
	switch {
	case actual < required:
		out.CoverageGaps = append(out.CoverageGaps, fmt.Sprintf(
			"Coverage gap: %.1f km of %.1f km required (%.1f km short). Consider additional Kallon towers or UAV patrols.",
			actual, required, required-actual))
	case ratio >= overProvisionRatio:
		out.CoverageGaps = append(out.CoverageGaps, fmt.Sprintf(
			"Coverage of %.1f km is %.0f%% of the %.1f km required; the surplus provides overlap and failover margin.",
			actual, ratio*100, required))
	}

	out.Confidence = explanationConfidence(ratio, len(rec.Products))
	out.Summary = fmt.Sprintf("%d products and %d field units cover %.1f km against a %.1f km requirement for %s.",
		len(rec.Products), rec.TotalUnits(false), actual, required, models.ThreatPhrases[rec.ThreatLevel])
	return out
}

func (x *Explainer) productReasoning(rec models.ProductRecommendation, p models.ProductQuantity, profile models.ThreatProfile) []string {
	spec := models.Products[p.Name]
	reasons := []string{fmt.Sprintf("%s: %s", p.Name, spec.Category)}

	if p.Name == models.ProductArtemisOS {
		reasons = append(reasons,
			fmt.Sprintf("Fuses feeds from %d field units into one operating picture", rec.TotalUnits(false)),
			"Required in every configuration")
		return reasons
	}

	eff := x.tuning.EffectiveRange(p.Name)
	reasons = append(reasons, fmt.Sprintf("Each unit contributes %.2f km effective range (%.0f km operational less %.0f%% overlap); %d units provide %.1f km",
		eff, spec.OperationalKm, x.tuning.OverlapFraction(spec.Family)*100, p.Quantity, eff*float64(p.Quantity)))

	if profile.HasPriorityProduct(p.Name) {
		reasons = append(reasons, fmt.Sprintf("Priority asset for %s", models.ThreatPhrases[profile.Level]))
	}

	switch p.Name {
	case models.ProductIroko:
		if profile.Requires24x7 {
			reasons = append(reasons, fmt.Sprintf("%d aircraft rotate to hold continuous air cover despite %s of flight endurance", p.Quantity, spec.Endurance))
		} else {
			reasons = append(reasons, fmt.Sprintf("%d aircraft launch on demand to verify alerts within %s", p.Quantity, spec.ResponseTime))
		}
	case models.ProductArcher:
		if profile.Level == models.ThreatRapidResponse {
			reasons = append(reasons, fmt.Sprintf("%d aircraft keep a long-range responder ready at all times", p.Quantity))
		} else {
			reasons = append(reasons, fmt.Sprintf("%d aircraft extend reconnaissance with %s endurance", p.Quantity, spec.Endurance))
		}
	case models.ProductKallon:
		reasons = append(reasons, fmt.Sprintf("%d towers provide persistent fixed-site detection out to %.0f km each", p.Quantity, spec.DetectionRangeKm))
	case models.ProductDuma:
		if rec.CoverageArea.IsLargeArea() {
			reasons = append(reasons, fmt.Sprintf("%d vehicles patrol the %s perimeter on %s shifts", p.Quantity, models.CoverageBuckets[rec.CoverageArea].Label, spec.Endurance))
		} else {
			reasons = append(reasons, fmt.Sprintf("%d vehicles provide ground presence on the compact site", p.Quantity))
		}
	}

	if profile.RequiresRedundancy {
		reasons = append(reasons, "Quantity includes redundancy units to tolerate single-unit failure")
	}
	return reasons
}

func explanationConfidence(ratio float64, productCount int) models.Confidence {
	switch {
	case ratio >= 1 && productCount >= 3:
		return models.ConfidenceHigh
	case ratio >= 0.8:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
