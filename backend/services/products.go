// ABOUTME: Product-specific quantity calculators for each catalogued product
// ABOUTME: Composes coverage, threat, overlap, rotation, and redundancy rules

package services

import (
	"fmt"

	"github.com/Atlas00000/terra-client/backend/models"
)

// CalculationInput is what every product calculator receives
type CalculationInput struct {
	Facility     models.FacilityType
	Threat       models.ThreatLevel
	Area         models.CoverageArea
	BaseQuantity int // facility-table minimum
}

// ProductResult is a calculator's quantity with its derivation
type ProductResult struct {
	Product    models.ProductName `json:"product"`
	Quantity   int                `json:"quantity"`
	Reasoning  []string           `json:"reasoning"`
	Capability string             `json:"capability"`
}

// ProductCalculator derives unit counts for individual products
type ProductCalculator struct {
	tuning Tuning
}

// NewProductCalculator creates a calculator bound to a tuning table
func NewProductCalculator(tuning Tuning) *ProductCalculator {
	return &ProductCalculator{tuning: tuning}
}

// Calculate dispatches to the calculator for product.
// Products without a dedicated case use the generic coverage calculation.
func (c *ProductCalculator) Calculate(product models.ProductName, in CalculationInput) ProductResult {
	switch product {
	case models.ProductKallon:
		return c.kallon(in)
	case models.ProductIroko:
		return c.iroko(in)
	case models.ProductArcher:
		return c.archer(in)
	case models.ProductDuma:
		return c.duma(in)
	default:
		return c.generic(product, in)
	}
}

// HasDedicatedCalculator reports whether Calculate has a product-specific case for product
func HasDedicatedCalculator(product models.ProductName) bool {
	switch product {
	case models.ProductKallon, models.ProductIroko, models.ProductArcher, models.ProductDuma:
		return true
	default:
		return false
	}
}

func capability(product models.ProductName) string {
	spec := models.Products[product]
	if spec.DetectionRangeKm > 0 {
		return fmt.Sprintf("%s - %.0f km detection, %s endurance", spec.Category, spec.DetectionRangeKm, spec.Endurance)
	}
	return spec.Category
}

// applyMultiplier scales a coverage-derived count by the threat multiplier
func applyMultiplier(qty int, profile models.ThreatProfile, reasoning []string) (int, []string) {
	scaled := ceilQty(float64(qty) * profile.Multiplier)
	if scaled != qty {
		reasoning = append(reasoning, fmt.Sprintf("Threat multiplier %.2fx: %d -> %d", profile.Multiplier, qty, scaled))
	}
	return scaled, reasoning
}

// floorAtBase enforces the facility-table minimum
func floorAtBase(qty, base int, reasoning []string) (int, []string) {
	if qty < base {
		reasoning = append(reasoning, fmt.Sprintf("Raised to facility minimum of %d", base))
		return base, reasoning
	}
	return qty, reasoning
}

// addRedundancy adds ceil(qty x fraction) spare units
func (c *ProductCalculator) addRedundancy(product models.ProductName, qty int, reasoning []string) (int, []string) {
	extra := ceilQty(float64(qty) * c.tuning.Redundancy[product])
	if extra > 0 {
		reasoning = append(reasoning, fmt.Sprintf("+%d redundancy units (%.0f%%)", extra, c.tuning.Redundancy[product]*100))
	}
	return qty + extra, reasoning
}

// rotate scales for endurance when continuous operation is required
func (c *ProductCalculator) rotate(product models.ProductName, qty int, profile models.ThreatProfile, reasoning []string) (int, []string) {
	factor, ok := c.tuning.Rotation[product]
	if !ok || !profile.Requires24x7 {
		return qty, reasoning
	}
	rotated := ceilQty(float64(qty) * factor)
	reasoning = append(reasoning, fmt.Sprintf("24/7 rotation %.1fx for %s endurance: %d -> %d",
		factor, models.Products[product].Endurance, qty, rotated))
	return rotated, reasoning
}

func (c *ProductCalculator) kallon(in CalculationInput) ProductResult {
	spec := models.Products[models.ProductKallon]
	required := RequiredCoverage(in.Area, in.Threat)
	profile := c.tuning.AnalyzeThreat(in.Threat, in.Facility)

	ov := TowerCoverage(required, spec.OperationalKm, c.tuning.OverlapFraction(spec.Family))
	reasoning := append([]string(nil), ov.Reasoning...)

	qty, reasoning := applyMultiplier(ov.Quantity, profile, reasoning)
	qty, reasoning = floorAtBase(qty, in.BaseQuantity, reasoning)
	if profile.RequiresRedundancy {
		qty, reasoning = c.addRedundancy(models.ProductKallon, qty, reasoning)
	}

	return ProductResult{Product: models.ProductKallon, Quantity: qty, Reasoning: reasoning, Capability: capability(models.ProductKallon)}
}

func (c *ProductCalculator) iroko(in CalculationInput) ProductResult {
	spec := models.Products[models.ProductIroko]
	required := RequiredCoverage(in.Area, in.Threat)
	profile := c.tuning.AnalyzeThreat(in.Threat, in.Facility)

	ov := UAVCoverage(required, spec.OperationalKm, c.tuning.OverlapFraction(spec.Family))
	reasoning := append([]string(nil), ov.Reasoning...)

	qty, reasoning := applyMultiplier(ov.Quantity, profile, reasoning)
	qty, reasoning = c.rotate(models.ProductIroko, qty, profile, reasoning)
	qty, reasoning = floorAtBase(qty, in.BaseQuantity, reasoning)
	if profile.RequiresRedundancy {
		qty, reasoning = c.addRedundancy(models.ProductIroko, qty, reasoning)
	}

	return ProductResult{Product: models.ProductIroko, Quantity: qty, Reasoning: reasoning, Capability: capability(models.ProductIroko)}
}

func (c *ProductCalculator) archer(in CalculationInput) ProductResult {
	spec := models.Products[models.ProductArcher]
	required := RequiredCoverage(in.Area, in.Threat)
	profile := c.tuning.AnalyzeThreat(in.Threat, in.Facility)
	rapid := in.Threat == models.ThreatRapidResponse

	ov := UAVCoverage(required, spec.OperationalKm, c.tuning.OverlapFraction(spec.Family))
	reasoning := append([]string(nil), ov.Reasoning...)

	qty, reasoning := applyMultiplier(ov.Quantity, profile, reasoning)
	qty, reasoning = c.rotate(models.ProductArcher, qty, profile, reasoning)
	if rapid && qty < c.tuning.RapidResponseMinimum {
		qty = c.tuning.RapidResponseMinimum
		reasoning = append(reasoning, fmt.Sprintf("Rapid response keeps at least %d aircraft ready", qty))
	}
	qty, reasoning = floorAtBase(qty, in.BaseQuantity, reasoning)
	if rapid || profile.RequiresRedundancy {
		qty, reasoning = c.addRedundancy(models.ProductArcher, qty, reasoning)
	}

	return ProductResult{Product: models.ProductArcher, Quantity: qty, Reasoning: reasoning, Capability: capability(models.ProductArcher)}
}

func (c *ProductCalculator) duma(in CalculationInput) ProductResult {
	spec := models.Products[models.ProductDuma]
	required := RequiredCoverage(in.Area, in.Threat)
	profile := c.tuning.AnalyzeThreat(in.Threat, in.Facility)

	var qty int
	var reasoning []string
	if in.Area.IsLargeArea() {
		ov := GroundVehicleCoverage(required, spec.DetectionRangeKm, 0)
		reasoning = append(reasoning, ov.Reasoning...)
		qty = ceilQty(float64(ov.Quantity) * profile.Multiplier * c.tuning.LargeAreaSurcharge)
		reasoning = append(reasoning, fmt.Sprintf("Large area: %d x %.2f threat x %.1f surcharge = %d",
			ov.Quantity, profile.Multiplier, c.tuning.LargeAreaSurcharge, qty))
	} else {
		qty = ceilQty(float64(in.BaseQuantity) * profile.Multiplier)
		reasoning = append(reasoning, fmt.Sprintf("Compact site: facility base %d x %.2f threat = %d",
			in.BaseQuantity, profile.Multiplier, qty))
	}
	qty, reasoning = floorAtBase(qty, in.BaseQuantity, reasoning)
	if profile.RequiresRedundancy {
		qty, reasoning = c.addRedundancy(models.ProductDuma, qty, reasoning)
	}

	return ProductResult{Product: models.ProductDuma, Quantity: qty, Reasoning: reasoning, Capability: capability(models.ProductDuma)}
}

func (c *ProductCalculator) generic(product models.ProductName, in CalculationInput) ProductResult {
	spec := models.Products[product]
	required := RequiredCoverage(in.Area, in.Threat)
	profile := c.tuning.AnalyzeThreat(in.Threat, in.Facility)

	qty := in.BaseQuantity
	var reasoning []string
	if spec.OperationalKm > 0 {
		byRange := ceilQty(required / spec.OperationalKm)
		reasoning = append(reasoning, fmt.Sprintf("%.1f km / %.1f km range = %d units", required, spec.OperationalKm, byRange))
		if byRange > qty {
			qty = byRange
		}
	}
	qty, reasoning = applyMultiplier(qty, profile, reasoning)

	return ProductResult{Product: product, Quantity: qty, Reasoning: reasoning, Capability: capability(product)}
}
