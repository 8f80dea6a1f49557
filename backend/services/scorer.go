// ABOUTME: Scorer rating recommendations on coverage, threat fit, redundancy, and cost
// ABOUTME: Weighted 0-100 overall score with a confidence tier

package services

import (
	"math"

	"github.com/Atlas00000/terra-client/backend/models"
)

// redundantProducts are the products counted by the redundancy score
var redundantProducts = []models.ProductName{models.ProductArcher, models.ProductIroko, models.ProductKallon}

// Scorer rates a recommendation
type Scorer struct {
	tuning Tuning
}

// NewScorer creates a scorer bound to a tuning table
func NewScorer(tuning Tuning) *Scorer {
	return &Scorer{tuning: tuning}
}

// CoverageScore is actual over required coverage as a percentage, capped at 100
func CoverageScore(actualKm, requiredKm float64) int {
	if requiredKm <= 0 {
		return 100
	}
	return min(100, int(math.Round(actualKm/requiredKm*100)))
}

// Score computes every sub-score, the weighted overall score, and the confidence tier
func (s *Scorer) Score(rec models.ProductRecommendation, profile models.ThreatProfile) models.RecommendationScore {
	coverage := CoverageScore(s.tuning.ActualCoverage(rec.Products), rec.RequiredCoverageKm)
	threat := s.threatScore(rec, profile)
	redundancy := s.redundancyScore(rec, profile)
	cost := s.costScore(rec)

	w := s.tuning.Weights
	overall := int(math.Round(float64(coverage)*w.Coverage +
		float64(threat)*w.Threat +
		float64(redundancy)*w.Redundancy +
		float64(cost)*w.Cost))

	return models.RecommendationScore{
		Overall:         overall,
		Coverage:        coverage,
		ThreatAlignment: threat,
		Redundancy:      redundancy,
		Cost:            cost,
		Confidence:      scoreConfidence(coverage, threat, redundancy),
	}
}

func (s *Scorer) threatScore(rec models.ProductRecommendation, profile models.ThreatProfile) int {
	if len(profile.PriorityProducts) == 0 {
		return 0
	}

	present := 0
	fieldPresent := 0
	allDoubled := true
	for _, p := range profile.PriorityProducts {
		if !rec.Has(p) {
			continue
		}
		present++
		if p == models.ProductArtemisOS {
			continue
		}
		fieldPresent++
		if rec.Quantity(p) < 2 {
			allDoubled = false
		}
	}

	score := 70 * float64(present) / float64(len(profile.PriorityProducts))
	if fieldPresent > 0 && allDoubled {
		score += 20
	}
	if (profile.Level == models.ThreatRapidResponse && rec.Has(models.ProductArcher)) ||
		(profile.Level == models.ThreatSurveillanceMonitoring && rec.Has(models.ProductIroko)) {
		score += 10
	}
	return min(100, int(math.Round(score)))
}

func (s *Scorer) redundancyScore(rec models.ProductRecommendation, profile models.ThreatProfile) int {
	if !profile.RequiresRedundancy {
		return 100
	}
	doubled := 0
	for _, p := range redundantProducts {
		if rec.Quantity(p) >= 2 {
			doubled++
		}
	}
	return int(math.Round(100 * float64(doubled) / float64(len(redundantProducts))))
}

func (s *Scorer) costScore(rec models.ProductRecommendation) int {
	score := max(50, 100-rec.TotalUnits(true))
	if len(rec.Products) > 4 {
		score -= 10
	}
	if rec.Has(models.ProductKallon) {
		score += 10
	}
	return max(0, min(100, score))
}

func scoreConfidence(coverage, threat, redundancy int) models.Confidence {
	lowest := min(coverage, threat, redundancy)
	switch {
	case lowest >= 80 && coverage >= 90:
		return models.ConfidenceHigh
	case lowest >= 60 && coverage >= 70:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
