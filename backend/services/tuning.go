// ABOUTME: Engine tuning table shared by product calculators, validator, and scorer
// ABOUTME: Overlap, redundancy, rotation, and score weights with optional YAML overrides

package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Atlas00000/terra-client/backend/models"
)

// ScoreWeights are the multipliers applied to each 0-100 sub-score.
// Compatibility is reserved and not part of the overall score.
type ScoreWeights struct {
	Coverage      float64 `yaml:"coverage" json:"coverage"`
	Threat        float64 `yaml:"threat" json:"threat"`
	Redundancy    float64 `yaml:"redundancy" json:"redundancy"`
	Cost          float64 `yaml:"cost" json:"cost"`
	Compatibility float64 `yaml:"compatibility" json:"compatibility"`
}

// Tuning holds every numeric knob of the recommendation pipeline
type Tuning struct {
	Overlap              map[models.ProductFamily]float64 `yaml:"overlap" json:"overlap"`
	Redundancy           map[models.ProductName]float64   `yaml:"redundancy" json:"redundancy"`
	Rotation             map[models.ProductName]float64   `yaml:"rotation" json:"rotation"`
	RecommendedThreshold float64                          `yaml:"recommended_threshold" json:"recommended_threshold"`
	PriorityBonus        float64                          `yaml:"priority_bonus" json:"priority_bonus"`
	LargeAreaSurcharge   float64                          `yaml:"large_area_surcharge" json:"large_area_surcharge"`
	RapidResponseMinimum int                              `yaml:"rapid_response_minimum" json:"rapid_response_minimum"`
	Weights              ScoreWeights                     `yaml:"weights" json:"weights"`
}

// DefaultTuning returns the built-in tuning table
func DefaultTuning() Tuning {
	return Tuning{
		Overlap: map[models.ProductFamily]float64{
			models.FamilyTower:  0.2,
			models.FamilyUAV:    0.15,
			models.FamilyGround: 0.15,
		},
		Redundancy: map[models.ProductName]float64{
			models.ProductKallon: 0.2,
			models.ProductIroko:  0.3,
			models.ProductArcher: 0.5,
			models.ProductDuma:   0.25,
		},
		Rotation: map[models.ProductName]float64{
			models.ProductIroko: 1.5,
		},
		RecommendedThreshold: 1.2,
		PriorityBonus:        1.2,
		LargeAreaSurcharge:   1.3,
		RapidResponseMinimum: 2,
		Weights: ScoreWeights{
			Coverage:      0.30,
			Threat:        0.25,
			Redundancy:    0.20,
			Cost:          0.15,
			Compatibility: 0.10,
		},
	}
}

// LoadTuning reads a YAML override file on top of DefaultTuning.
// An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("reading tuning file: %w", err)
	}
	return ParseTuning(data)
}

// tuningOverride mirrors Tuning with pointer scalars so an explicit zero
// in the file is told apart from an absent key
type tuningOverride struct {
	Overlap              map[models.ProductFamily]float64 `yaml:"overlap"`
	Redundancy           map[models.ProductName]float64   `yaml:"redundancy"`
	Rotation             map[models.ProductName]float64   `yaml:"rotation"`
	RecommendedThreshold *float64                         `yaml:"recommended_threshold"`
	PriorityBonus        *float64                         `yaml:"priority_bonus"`
	LargeAreaSurcharge   *float64                         `yaml:"large_area_surcharge"`
	RapidResponseMinimum *int                             `yaml:"rapid_response_minimum"`
	Weights              *weightsOverride                 `yaml:"weights"`
}

type weightsOverride struct {
	Coverage      *float64 `yaml:"coverage"`
	Threat        *float64 `yaml:"threat"`
	Redundancy    *float64 `yaml:"redundancy"`
	Cost          *float64 `yaml:"cost"`
	Compatibility *float64 `yaml:"compatibility"`
}

// ParseTuning decodes YAML overrides on top of DefaultTuning and validates the result.
// Keys absent from the file keep their defaults, including individual weights.
func ParseTuning(data []byte) (Tuning, error) {
	tuning := DefaultTuning()

	var override tuningOverride
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&override); err != nil && !errors.Is(err, io.EOF) {
		return tuning, fmt.Errorf("parsing tuning file: %w", err)
	}

	tuning.merge(override)
	if err := tuning.Validate(); err != nil {
		return tuning, err
	}
	return tuning, nil
}

func (t *Tuning) merge(o tuningOverride) {
	for k, v := range o.Overlap {
		t.Overlap[k] = v
	}
	for k, v := range o.Redundancy {
		t.Redundancy[k] = v
	}
	for k, v := range o.Rotation {
		t.Rotation[k] = v
	}
	setIfPresent(&t.RecommendedThreshold, o.RecommendedThreshold)
	setIfPresent(&t.PriorityBonus, o.PriorityBonus)
	setIfPresent(&t.LargeAreaSurcharge, o.LargeAreaSurcharge)
	setIfPresent(&t.RapidResponseMinimum, o.RapidResponseMinimum)
	if w := o.Weights; w != nil {
		setIfPresent(&t.Weights.Coverage, w.Coverage)
		setIfPresent(&t.Weights.Threat, w.Threat)
		setIfPresent(&t.Weights.Redundancy, w.Redundancy)
		setIfPresent(&t.Weights.Cost, w.Cost)
		setIfPresent(&t.Weights.Compatibility, w.Compatibility)
	}
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks that fractions and factors are within usable bounds
func (t Tuning) Validate() error {
	for family, v := range t.Overlap {
		if v < 0 || v >= 1 {
			return fmt.Errorf("overlap for %s must be in [0, 1), got %v", family, v)
		}
	}
	for product, v := range t.Redundancy {
		if v < 0 {
			return fmt.Errorf("redundancy for %s must not be negative, got %v", product, v)
		}
	}
	for product, v := range t.Rotation {
		if v < 1 {
			return fmt.Errorf("rotation for %s must be at least 1, got %v", product, v)
		}
	}
	if t.RecommendedThreshold < 0 {
		return fmt.Errorf("recommended_threshold must not be negative, got %v", t.RecommendedThreshold)
	}
	if t.PriorityBonus < 1 {
		return fmt.Errorf("priority_bonus must be at least 1, got %v", t.PriorityBonus)
	}
	if t.LargeAreaSurcharge < 1 {
		return fmt.Errorf("large_area_surcharge must be at least 1, got %v", t.LargeAreaSurcharge)
	}
	if t.RapidResponseMinimum < 0 {
		return fmt.Errorf("rapid_response_minimum must not be negative, got %d", t.RapidResponseMinimum)
	}
	w := t.Weights
	if w.Coverage < 0 || w.Threat < 0 || w.Redundancy < 0 || w.Cost < 0 || w.Compatibility < 0 {
		return fmt.Errorf("score weights must not be negative")
	}
	if sum := w.Coverage + w.Threat + w.Redundancy + w.Cost + w.Compatibility; sum > 1.0001 {
		return fmt.Errorf("score weights must sum to at most 1, got %.2f", sum)
	}
	return nil
}

// OverlapFraction returns the configured overlap for a product family
func (t Tuning) OverlapFraction(family models.ProductFamily) float64 {
	return t.Overlap[family]
}

// EffectiveRange is a product's operational range less its family overlap
func (t Tuning) EffectiveRange(product models.ProductName) float64 {
	spec, ok := models.Products[product]
	if !ok {
		return 0
	}
	return spec.OperationalKm * (1 - t.OverlapFraction(spec.Family))
}

// ActualCoverage sums quantity times effective range over the non-platform products
func (t Tuning) ActualCoverage(products []models.ProductQuantity) float64 {
	total := 0.0
	for _, p := range products {
		if p.Name == models.ProductArtemisOS {
			continue
		}
		total += float64(p.Quantity) * t.EffectiveRange(p.Name)
	}
	return total
}
