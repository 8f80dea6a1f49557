// ABOUTME: Coverage-overlap calculators for tower, UAV, and ground-vehicle families
// ABOUTME: Turns a required coverage distance into a unit count

package services

import (
	"fmt"
	"math"
)

// OverlapResult is a unit count with the effective range it was derived from
type OverlapResult struct {
	Quantity       int      `json:"quantity"`
	EffectiveRange float64  `json:"effective_range"`
	Reasoning      []string `json:"reasoning"`
}

// ceilQty rounds a derived quantity up, ignoring float noise just above an integer
func ceilQty(x float64) int {
	q := int(math.Ceil(x - 1e-9))
	if q < 0 {
		return 0
	}
	return q
}

// TowerCoverage sizes fixed towers laid out along the required distance
func TowerCoverage(requiredKm, operationalKm, overlap float64) OverlapResult {
	effective := operationalKm * (1 - overlap)
	if effective <= 0 {
		return OverlapResult{Reasoning: []string{"Tower has no usable range"}}
	}
	qty := ceilQty(requiredKm / effective)
	return OverlapResult{
		Quantity:       qty,
		EffectiveRange: effective,
		Reasoning: []string{
			fmt.Sprintf("Effective radius %.2f km (%.1f km range with %.0f%% overlap)", effective, operationalKm, overlap*100),
			fmt.Sprintf("%.1f km / %.2f km = %d towers", requiredKm, effective, qty),
		},
	}
}

// UAVCoverage sizes aircraft by comparing circular patrol areas
func UAVCoverage(requiredKm, operationalKm, overlap float64) OverlapResult {
	effective := operationalKm * (1 - overlap)
	if effective <= 0 {
		return OverlapResult{Reasoning: []string{"UAV has no usable range"}}
	}
	areaPerUnit := math.Pi * effective * effective
	totalArea := math.Pi * requiredKm * requiredKm
	qty := ceilQty(totalArea / areaPerUnit)
	return OverlapResult{
		Quantity:       qty,
		EffectiveRange: effective,
		Reasoning: []string{
			fmt.Sprintf("Effective range %.2f km (%.1f km range with %.0f%% overlap)", effective, operationalKm, overlap*100),
			fmt.Sprintf("Area to cover %.1f km² vs %.1f km² per unit = %d units", totalArea, areaPerUnit, qty),
		},
	}
}

// GroundVehicleCoverage sizes patrol vehicles along a route.
// A zero routeKm patrols the perimeter of the required radius.
func GroundVehicleCoverage(requiredKm, detectionKm, routeKm float64) OverlapResult {
	route := routeKm
	routeDesc := "explicit route"
	if route <= 0 {
		route = 2 * math.Pi * requiredKm
		routeDesc = "perimeter"
	}
	perUnit := detectionKm * 2
	if perUnit <= 0 {
		return OverlapResult{Reasoning: []string{"Vehicle has no detection range"}}
	}
	qty := ceilQty(route / perUnit)
	return OverlapResult{
		Quantity:       qty,
		EffectiveRange: perUnit,
		Reasoning: []string{
			fmt.Sprintf("Patrol %s of %.1f km", routeDesc, route),
			fmt.Sprintf("%.1f km / %.1f km swept per unit = %d vehicles", route, perUnit, qty),
		},
	}
}
