// ABOUTME: Product stack recommendation output models
// ABOUTME: Threat profiles, product quantities, validation, scoring, and explanation payloads

package models

// ThreatProfile is derived per call from a threat level and facility type
type ThreatProfile struct {
	Level              ThreatLevel   `json:"level"`
	Intensity          float64       `json:"intensity"`
	Multiplier         float64       `json:"multiplier"`
	RequiresRedundancy bool          `json:"requires_redundancy"`
	Requires24x7       bool          `json:"requires_24_7"`
	PriorityProducts   []ProductName `json:"priority_products"`
	Reasoning          []string      `json:"reasoning"`
}

// HasPriorityProduct reports whether product is in the profile's priority list
func (p ThreatProfile) HasPriorityProduct(product ProductName) bool {
	for _, pp := range p.PriorityProducts {
		if pp == product {
			return true
		}
	}
	return false
}

// ProductQuantity is one line of a recommended product stack
type ProductQuantity struct {
	Name       ProductName `json:"name"`
	Quantity   int         `json:"quantity"`
	Capability string      `json:"capability"`
}

// ResponseTime pairs a product with its static response-time descriptor
type ResponseTime struct {
	Product ProductName `json:"product"`
	Time    string      `json:"time"`
}

// ValidationResult holds hard errors and soft warnings for a recommendation
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Confidence is a coarse tier attached to scores and explanations
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// RecommendationScore holds the 0-100 sub-scores and their weighted total
type RecommendationScore struct {
	Overall         int        `json:"overall"`
	Coverage        int        `json:"coverage"`
	ThreatAlignment int        `json:"threat_alignment"`
	Redundancy      int        `json:"redundancy"`
	Cost            int        `json:"cost"`
	Confidence      Confidence `json:"confidence"`
}

// ProductExplanation is the ordered reasoning shown for one product
type ProductExplanation struct {
	Product   ProductName `json:"product"`
	Quantity  int         `json:"quantity"`
	Reasoning []string    `json:"reasoning"`
}

// Explanation is the human-readable narrative attached to a recommendation.
// Confidence is computed from coverage ratio and stack size, independently of the score.
type Explanation struct {
	Products     []ProductExplanation `json:"products"`
	CoverageGaps []string             `json:"coverage_gaps"`
	Confidence   Confidence           `json:"confidence"`
	Summary      string               `json:"summary"`
}

// ProductRecommendation is the engine output for one configuration
type ProductRecommendation struct {
	FacilityType       FacilityType         `json:"facility_type"`
	ThreatLevel        ThreatLevel          `json:"threat_level"`
	CoverageArea       CoverageArea         `json:"coverage_area"`
	RequiredCoverageKm float64              `json:"required_coverage_km"`
	Products           []ProductQuantity    `json:"products"`
	Description        string               `json:"description"`
	ResponseTimes      []ResponseTime       `json:"response_times"`
	Validation         *ValidationResult    `json:"validation,omitempty"`
	Score              *RecommendationScore `json:"score,omitempty"`
	Explanation        *Explanation         `json:"explanation,omitempty"`
}

// Quantity returns the recommended quantity of product, or 0 if absent
func (r ProductRecommendation) Quantity(product ProductName) int {
	for _, p := range r.Products {
		if p.Name == product {
			return p.Quantity
		}
	}
	return 0
}

// Has reports whether product is part of the stack
func (r ProductRecommendation) Has(product ProductName) bool {
	for _, p := range r.Products {
		if p.Name == product {
			return true
		}
	}
	return false
}

// TotalUnits sums quantities, optionally leaving the platform out
func (r ProductRecommendation) TotalUnits(includePlatform bool) int {
	total := 0
	for _, p := range r.Products {
		if p.Name == ProductArtemisOS && !includePlatform {
			continue
		}
		total += p.Quantity
	}
	return total
}

// MatrixEntry summarizes one input triple for the recommendation matrix
type MatrixEntry struct {
	FacilityType      FacilityType `json:"facility_type"`
	ThreatLevel       ThreatLevel  `json:"threat_level"`
	CoverageArea      CoverageArea `json:"coverage_area"`
	TotalUnits        int          `json:"total_units"`
	ProductTypes      int          `json:"product_types"`
	OverallScore      int          `json:"overall_score"`
	ScoreConfidence   Confidence   `json:"score_confidence"`
	ExplainConfidence Confidence   `json:"explanation_confidence"`
	IsValid           bool         `json:"is_valid"`
	WarningCount      int          `json:"warning_count"`
}

// MatrixResponse wraps the full recommendation matrix
type MatrixResponse struct {
	Entries     []MatrixEntry `json:"entries"`
	Total       int           `json:"total"`
	ValidCount  int           `json:"valid_count"`
	GeneratedAt string        `json:"generated_at"`
}
