// ABOUTME: Enumerated configurator inputs and product identifiers
// ABOUTME: Closed sets for facility type, threat level, coverage area, and product tiers

package models

// FacilityType is one of the fixed infrastructure-site archetypes
type FacilityType string

const (
	FacilityPowerPlant         FacilityType = "power-plant"
	FacilitySubstation         FacilityType = "substation"
	FacilityCritical           FacilityType = "critical-facility"
	FacilityBorderSecurity     FacilityType = "border-security"
	FacilityIndustrialComplex  FacilityType = "industrial-complex"
	FacilityOilGas             FacilityType = "oil-gas"
	FacilityMining             FacilityType = "mining"
	FacilityTelecommunications FacilityType = "telecommunications"
)

// AllFacilityTypes lists facility archetypes in wizard display order
var AllFacilityTypes = []FacilityType{
	FacilityPowerPlant,
	FacilitySubstation,
	FacilityCritical,
	FacilityBorderSecurity,
	FacilityIndustrialComplex,
	FacilityOilGas,
	FacilityMining,
	FacilityTelecommunications,
}

// Valid reports whether f is a known facility type
func (f FacilityType) Valid() bool {
	_, ok := Facilities[f]
	return ok
}

// ThreatLevel is the operational concern driving urgency multipliers
type ThreatLevel string

const (
	ThreatIntrusionDetection     ThreatLevel = "intrusion-detection"
	ThreatSurveillanceMonitoring ThreatLevel = "surveillance-monitoring"
	ThreatRapidResponse          ThreatLevel = "rapid-response"
	ThreatPerimeterSecurity      ThreatLevel = "perimeter-security"
	ThreatMultiThreat            ThreatLevel = "multi-threat"
)

// AllThreatLevels lists threat levels in wizard display order
var AllThreatLevels = []ThreatLevel{
	ThreatIntrusionDetection,
	ThreatSurveillanceMonitoring,
	ThreatRapidResponse,
	ThreatPerimeterSecurity,
	ThreatMultiThreat,
}

// Valid reports whether t is a known threat level
func (t ThreatLevel) Valid() bool {
	_, ok := ThreatTraitsTable[t]
	return ok
}

// CoverageArea is a bucketed distance range the deployment must span
type CoverageArea string

const (
	Coverage0To5km   CoverageArea = "0-5km"
	Coverage5To15km  CoverageArea = "5-15km"
	Coverage15To50km CoverageArea = "15-50km"
	Coverage50kmPlus CoverageArea = "50km-plus"
)

// AllCoverageAreas lists coverage buckets from smallest to largest
var AllCoverageAreas = []CoverageArea{
	Coverage0To5km,
	Coverage5To15km,
	Coverage15To50km,
	Coverage50kmPlus,
}

// Valid reports whether c is a known coverage bucket
func (c CoverageArea) Valid() bool {
	_, ok := CoverageBuckets[c]
	return ok
}

// IsLargeArea reports whether the bucket spans 15km or more
func (c CoverageArea) IsLargeArea() bool {
	return c == Coverage15To50km || c == Coverage50kmPlus
}

// Priority is the facility-table tier controlling product selection
type Priority string

const (
	PriorityEssential   Priority = "essential"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"
)

// ProductName identifies a catalogued product
type ProductName string

const (
	ProductArtemisOS ProductName = "ArtemisOS"
	ProductIroko     ProductName = "Iroko"
	ProductArcher    ProductName = "Archer"
	ProductDuma      ProductName = "Duma"
	ProductKallon    ProductName = "Kallon"
)

// AllProducts lists catalogued products, platform first
var AllProducts = []ProductName{
	ProductArtemisOS,
	ProductIroko,
	ProductArcher,
	ProductDuma,
	ProductKallon,
}

// ProductFamily groups products that share a coverage-overlap model
type ProductFamily string

const (
	FamilyPlatform ProductFamily = "platform"
	FamilyTower    ProductFamily = "tower"
	FamilyUAV      ProductFamily = "uav"
	FamilyGround   ProductFamily = "ground"
)

// Option is a value/label pair for wizard and API option lists
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// ConfiguratorOptions lists every selectable input for the three wizard questions
type ConfiguratorOptions struct {
	FacilityTypes []Option `json:"facility_types"`
	ThreatLevels  []Option `json:"threat_levels"`
	CoverageAreas []Option `json:"coverage_areas"`
}

// ConfigurationInput is the three wizard answers
type ConfigurationInput struct {
	FacilityType FacilityType `json:"facility_type" validate:"required,facility"`
	ThreatLevel  ThreatLevel  `json:"threat_level" validate:"required,threat"`
	CoverageArea CoverageArea `json:"coverage_area" validate:"required,coverage"`
}

// BuildOptions assembles the option lists from the catalog labels
func BuildOptions() ConfiguratorOptions {
	opts := ConfiguratorOptions{}
	for _, f := range AllFacilityTypes {
		opts.FacilityTypes = append(opts.FacilityTypes, Option{
			Value:       string(f),
			Label:       FacilityLabels[f],
			Description: FacilityPhrases[f],
		})
	}
	for _, t := range AllThreatLevels {
		opts.ThreatLevels = append(opts.ThreatLevels, Option{
			Value:       string(t),
			Label:       ThreatLabels[t],
			Description: ThreatPhrases[t],
		})
	}
	for _, c := range AllCoverageAreas {
		opts.CoverageAreas = append(opts.CoverageAreas, Option{
			Value: string(c),
			Label: CoverageBuckets[c].Label,
		})
	}
	return opts
}
