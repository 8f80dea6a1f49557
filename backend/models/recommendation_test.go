// ABOUTME: Tests for recommendation output helpers
// ABOUTME: Validates quantity lookup and unit totals

package models

import "testing"

func TestProductRecommendation_Helpers(t *testing.T) {
	rec := ProductRecommendation{
		Products: []ProductQuantity{
			{Name: ProductArtemisOS, Quantity: 1},
			{Name: ProductKallon, Quantity: 5},
			{Name: ProductIroko, Quantity: 8},
		},
	}

	if got := rec.Quantity(ProductKallon); got != 5 {
		t.Errorf("Expected Kallon 5, got %d", got)
	}
	if got := rec.Quantity(ProductDuma); got != 0 {
		t.Errorf("Expected Duma 0, got %d", got)
	}
	if !rec.Has(ProductIroko) {
		t.Error("Expected Iroko present")
	}
	if rec.Has(ProductArcher) {
		t.Error("Expected Archer absent")
	}
	if got := rec.TotalUnits(false); got != 13 {
		t.Errorf("Expected 13 units without platform, got %d", got)
	}
	if got := rec.TotalUnits(true); got != 14 {
		t.Errorf("Expected 14 units with platform, got %d", got)
	}
}

func TestThreatProfile_HasPriorityProduct(t *testing.T) {
	p := ThreatProfile{PriorityProducts: []ProductName{ProductArcher, ProductIroko, ProductArtemisOS}}

	if !p.HasPriorityProduct(ProductArcher) {
		t.Error("Expected Archer to be a priority product")
	}
	if p.HasPriorityProduct(ProductKallon) {
		t.Error("Expected Kallon not to be a priority product")
	}
}
