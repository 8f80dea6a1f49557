// ABOUTME: Static knowledge base for products, facilities, and threat taxonomies
// ABOUTME: Immutable reference data consumed by the recommendation engine

package models

// ProductSpec describes a catalogued product. Ranges are in kilometers.
type ProductSpec struct {
	Name             ProductName   `json:"name"`
	Family           ProductFamily `json:"family"`
	Category         string        `json:"category"`
	DetectionRangeKm float64       `json:"detection_range_km"`
	OperationalKm    float64       `json:"operational_range_km"`
	Endurance        string        `json:"endurance"`
	ResponseTime     string        `json:"response_time"`
	Capabilities     []string      `json:"capabilities"`
	UseCases         []string      `json:"use_cases"`
}

// ProductRequirement is one row of a facility requirement table
type ProductRequirement struct {
	Product     ProductName `json:"product"`
	MinQuantity int         `json:"min_quantity"`
	MaxQuantity int         `json:"max_quantity"`
	Priority    Priority    `json:"priority"`
}

// FacilityRequirement is the baseline product table for a facility archetype.
// ThreatPriorities is ranked; index 0 earns the priority bonus.
type FacilityRequirement struct {
	Facility         FacilityType         `json:"facility"`
	MinCoverageKm    float64              `json:"min_coverage_km"`
	Products         []ProductRequirement `json:"products"`
	ThreatPriorities []ThreatLevel        `json:"threat_priorities"`
}

// Requirement returns the table row for product, if listed
func (f FacilityRequirement) Requirement(product ProductName) (ProductRequirement, bool) {
	for _, r := range f.Products {
		if r.Product == product {
			return r, true
		}
	}
	return ProductRequirement{}, false
}

// ThreatRank returns the rank of threat in the facility priorities, or -1
func (f FacilityRequirement) ThreatRank(threat ThreatLevel) int {
	for i, t := range f.ThreatPriorities {
		if t == threat {
			return i
		}
	}
	return -1
}

// CoverageBucket holds the two distances a coverage bucket maps to
type CoverageBucket struct {
	Label          string  `json:"label"`
	ConservativeKm float64 `json:"conservative_km"` // upper bound
	StandardKm     float64 `json:"standard_km"`     // midpoint
}

// ThreatTraits are the fixed per-threat-level characteristics
type ThreatTraits struct {
	Intensity          float64
	BaseMultiplier     float64
	RequiresRedundancy bool
	Requires24x7       bool
	PriorityProducts   []ProductName
}

var Products = map[ProductName]ProductSpec{
	ProductArtemisOS: {
		Name:         ProductArtemisOS,
		Family:       FamilyPlatform,
		Category:     "Command & Control Platform",
		Endurance:    "Continuous",
		ResponseTime: "<1 second",
		Capabilities: []string{"Sensor fusion", "Autonomous tasking", "Unified common operating picture", "Alert triage"},
		UseCases:     []string{"Central command", "Multi-asset coordination", "Incident response orchestration"},
	},
	ProductIroko: {
		Name:             ProductIroko,
		Family:           FamilyUAV,
		Category:         "Surveillance UAV",
		DetectionRangeKm: 3,
		OperationalKm:    10,
		Endurance:        "50 minutes",
		ResponseTime:     "<3 minutes",
		Capabilities:     []string{"Aerial surveillance", "Thermal imaging", "Autonomous patrol", "Live video downlink"},
		UseCases:         []string{"Area monitoring", "Incident verification", "Asset inspection"},
	},
	ProductArcher: {
		Name:             ProductArcher,
		Family:           FamilyUAV,
		Category:         "Long-Range VTOL UAV",
		DetectionRangeKm: 8,
		OperationalKm:    15,
		Endurance:        "6 hours",
		ResponseTime:     "<5 minutes",
		Capabilities:     []string{"Rapid deployment", "Extended endurance", "Payload delivery", "Wide-area reconnaissance"},
		UseCases:         []string{"Rapid response", "Long-range patrol", "Pursuit and tracking"},
	},
	ProductDuma: {
		Name:             ProductDuma,
		Family:           FamilyGround,
		Category:         "Unmanned Ground Vehicle",
		DetectionRangeKm: 2,
		OperationalKm:    25,
		Endurance:        "8 hours",
		ResponseTime:     "<10 minutes",
		Capabilities:     []string{"Ground patrol", "All-terrain mobility", "Perimeter sweeps", "Onboard sensor mast"},
		UseCases:         []string{"Perimeter patrol", "Pipeline and route inspection", "Remote site presence"},
	},
	ProductKallon: {
		Name:             ProductKallon,
		Family:           FamilyTower,
		Category:         "Surveillance Tower",
		DetectionRangeKm: 5,
		OperationalKm:    5,
		Endurance:        "24/7 continuous",
		ResponseTime:     "<1 second",
		Capabilities:     []string{"Fixed-site detection", "Radar and EO/IR sensing", "Solar powered", "Persistent monitoring"},
		UseCases:         []string{"Perimeter monitoring", "Critical asset protection", "Early warning"},
	},
}

var CoverageBuckets = map[CoverageArea]CoverageBucket{
	Coverage0To5km:   {Label: "0-5 km", ConservativeKm: 5, StandardKm: 2.5},
	Coverage5To15km:  {Label: "5-15 km", ConservativeKm: 15, StandardKm: 10},
	Coverage15To50km: {Label: "15-50 km", ConservativeKm: 50, StandardKm: 32.5},
	Coverage50kmPlus: {Label: "50+ km", ConservativeKm: 100, StandardKm: 75},
}

var ThreatTraitsTable = map[ThreatLevel]ThreatTraits{
	ThreatIntrusionDetection: {
		Intensity:        0.5,
		BaseMultiplier:   1.0,
		PriorityProducts: []ProductName{ProductKallon, ProductIroko, ProductArtemisOS},
	},
	ThreatSurveillanceMonitoring: {
		Intensity:        0.6,
		BaseMultiplier:   1.1,
		Requires24x7:     true,
		PriorityProducts: []ProductName{ProductIroko, ProductKallon, ProductArtemisOS},
	},
	ThreatRapidResponse: {
		Intensity:          0.8,
		BaseMultiplier:     1.3,
		RequiresRedundancy: true,
		PriorityProducts:   []ProductName{ProductArcher, ProductIroko, ProductArtemisOS},
	},
	ThreatPerimeterSecurity: {
		Intensity:          0.7,
		BaseMultiplier:     1.2,
		RequiresRedundancy: true,
		Requires24x7:       true,
		PriorityProducts:   []ProductName{ProductKallon, ProductDuma, ProductArtemisOS},
	},
	ThreatMultiThreat: {
		Intensity:          1.0,
		BaseMultiplier:     1.5,
		RequiresRedundancy: true,
		Requires24x7:       true,
		PriorityProducts:   []ProductName{ProductIroko, ProductArcher, ProductDuma, ProductKallon, ProductArtemisOS},
	},
}

// ThreatExpectedProducts maps a threat level to products a sound stack should carry
var ThreatExpectedProducts = map[ThreatLevel][]ProductName{
	ThreatIntrusionDetection:     {ProductKallon},
	ThreatSurveillanceMonitoring: {ProductIroko},
	ThreatRapidResponse:          {ProductArcher},
	ThreatPerimeterSecurity:      {ProductDuma},
	ThreatMultiThreat:            {ProductIroko, ProductArcher},
}

// platform returns the ArtemisOS row shared by every facility table
func platform() ProductRequirement {
	return ProductRequirement{Product: ProductArtemisOS, MinQuantity: 1, MaxQuantity: 1, Priority: PriorityEssential}
}

var Facilities = map[FacilityType]FacilityRequirement{
	FacilityPowerPlant: {
		Facility:      FacilityPowerPlant,
		MinCoverageKm: 10,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 4, MaxQuantity: 12, Priority: PriorityEssential},
			{Product: ProductIroko, MinQuantity: 4, MaxQuantity: 12, Priority: PriorityEssential},
			{Product: ProductArcher, MinQuantity: 1, MaxQuantity: 4, Priority: PriorityRecommended},
			{Product: ProductDuma, MinQuantity: 1, MaxQuantity: 4, Priority: PriorityOptional},
		},
		ThreatPriorities: []ThreatLevel{ThreatIntrusionDetection, ThreatPerimeterSecurity, ThreatSurveillanceMonitoring},
	},
	FacilitySubstation: {
		Facility:      FacilitySubstation,
		MinCoverageKm: 5,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 2, MaxQuantity: 8, Priority: PriorityEssential},
			{Product: ProductArcher, MinQuantity: 1, MaxQuantity: 4, Priority: PriorityRecommended},
			{Product: ProductIroko, MinQuantity: 2, MaxQuantity: 6, Priority: PriorityRecommended},
			{Product: ProductDuma, MinQuantity: 1, MaxQuantity: 2, Priority: PriorityOptional},
		},
		ThreatPriorities: []ThreatLevel{ThreatRapidResponse, ThreatIntrusionDetection},
	},
	FacilityCritical: {
		Facility:      FacilityCritical,
		MinCoverageKm: 8,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 4, MaxQuantity: 10, Priority: PriorityEssential},
			{Product: ProductIroko, MinQuantity: 2, MaxQuantity: 8, Priority: PriorityEssential},
			{Product: ProductArcher, MinQuantity: 1, MaxQuantity: 4, Priority: PriorityRecommended},
		},
		ThreatPriorities: []ThreatLevel{ThreatMultiThreat, ThreatIntrusionDetection, ThreatRapidResponse},
	},
	FacilityBorderSecurity: {
		Facility:      FacilityBorderSecurity,
		MinCoverageKm: 50,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 6, MaxQuantity: 20, Priority: PriorityEssential},
			{Product: ProductIroko, MinQuantity: 4, MaxQuantity: 16, Priority: PriorityEssential},
			{Product: ProductDuma, MinQuantity: 2, MaxQuantity: 8, Priority: PriorityRecommended},
			{Product: ProductArcher, MinQuantity: 2, MaxQuantity: 8, Priority: PriorityRecommended},
		},
		ThreatPriorities: []ThreatLevel{ThreatPerimeterSecurity, ThreatSurveillanceMonitoring, ThreatMultiThreat},
	},
	FacilityIndustrialComplex: {
		Facility:      FacilityIndustrialComplex,
		MinCoverageKm: 12,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 3, MaxQuantity: 10, Priority: PriorityEssential},
			{Product: ProductDuma, MinQuantity: 1, MaxQuantity: 4, Priority: PriorityRecommended},
			{Product: ProductIroko, MinQuantity: 2, MaxQuantity: 6, Priority: PriorityRecommended},
			{Product: ProductArcher, MinQuantity: 1, MaxQuantity: 3, Priority: PriorityOptional},
		},
		ThreatPriorities: []ThreatLevel{ThreatIntrusionDetection, ThreatSurveillanceMonitoring},
	},
	FacilityOilGas: {
		Facility:      FacilityOilGas,
		MinCoverageKm: 25,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 4, MaxQuantity: 14, Priority: PriorityEssential},
			{Product: ProductIroko, MinQuantity: 3, MaxQuantity: 10, Priority: PriorityEssential},
			{Product: ProductDuma, MinQuantity: 2, MaxQuantity: 6, Priority: PriorityRecommended},
			{Product: ProductArcher, MinQuantity: 1, MaxQuantity: 4, Priority: PriorityRecommended},
		},
		ThreatPriorities: []ThreatLevel{ThreatPerimeterSecurity, ThreatMultiThreat, ThreatSurveillanceMonitoring},
	},
	FacilityMining: {
		Facility:      FacilityMining,
		MinCoverageKm: 20,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 3, MaxQuantity: 10, Priority: PriorityEssential},
			{Product: ProductDuma, MinQuantity: 2, MaxQuantity: 6, Priority: PriorityEssential},
			{Product: ProductIroko, MinQuantity: 2, MaxQuantity: 6, Priority: PriorityRecommended},
			{Product: ProductArcher, MinQuantity: 1, MaxQuantity: 3, Priority: PriorityOptional},
		},
		ThreatPriorities: []ThreatLevel{ThreatPerimeterSecurity, ThreatIntrusionDetection},
	},
	FacilityTelecommunications: {
		Facility:      FacilityTelecommunications,
		MinCoverageKm: 5,
		Products: []ProductRequirement{
			platform(),
			{Product: ProductKallon, MinQuantity: 2, MaxQuantity: 8, Priority: PriorityEssential},
			{Product: ProductIroko, MinQuantity: 1, MaxQuantity: 4, Priority: PriorityRecommended},
			{Product: ProductArcher, MinQuantity: 1, MaxQuantity: 2, Priority: PriorityOptional},
		},
		ThreatPriorities: []ThreatLevel{ThreatIntrusionDetection, ThreatSurveillanceMonitoring},
	},
}

var FacilityLabels = map[FacilityType]string{
	FacilityPowerPlant:         "Power Plant",
	FacilitySubstation:         "Electrical Substation",
	FacilityCritical:           "Critical Facility",
	FacilityBorderSecurity:     "Border Security",
	FacilityIndustrialComplex:  "Industrial Complex",
	FacilityOilGas:             "Oil & Gas",
	FacilityMining:             "Mining Operation",
	FacilityTelecommunications: "Telecommunications",
}

// FacilityPhrases are prose fragments used in recommendation descriptions
var FacilityPhrases = map[FacilityType]string{
	FacilityPowerPlant:         "power generation facilities",
	FacilitySubstation:         "electrical substations",
	FacilityCritical:           "critical infrastructure sites",
	FacilityBorderSecurity:     "border and frontier zones",
	FacilityIndustrialComplex:  "industrial complexes",
	FacilityOilGas:             "oil and gas installations",
	FacilityMining:             "mining operations",
	FacilityTelecommunications: "telecommunications infrastructure",
}

var ThreatLabels = map[ThreatLevel]string{
	ThreatIntrusionDetection:     "Intrusion Detection",
	ThreatSurveillanceMonitoring: "Surveillance & Monitoring",
	ThreatRapidResponse:          "Rapid Response",
	ThreatPerimeterSecurity:      "Perimeter Security",
	ThreatMultiThreat:            "Multi-Threat Environment",
}

// ThreatPhrases are prose fragments used in recommendation descriptions
var ThreatPhrases = map[ThreatLevel]string{
	ThreatIntrusionDetection:     "intrusion detection",
	ThreatSurveillanceMonitoring: "continuous surveillance",
	ThreatRapidResponse:          "rapid incident response",
	ThreatPerimeterSecurity:      "perimeter protection",
	ThreatMultiThreat:            "multi-layered threat defense",
}
