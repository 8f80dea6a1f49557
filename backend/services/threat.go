// ABOUTME: Threat analyzer deriving quantity multipliers and operating flags
// ABOUTME: Applies a priority bonus when the threat tops the facility's priorities

package services

import (
	"fmt"

	"github.com/Atlas00000/terra-client/backend/models"
)

// AnalyzeThreat builds a threat profile using the default tuning
func AnalyzeThreat(threat models.ThreatLevel, facility models.FacilityType) models.ThreatProfile {
	return DefaultTuning().AnalyzeThreat(threat, facility)
}

// AnalyzeThreat builds a threat profile for a threat level at a facility
func (t Tuning) AnalyzeThreat(threat models.ThreatLevel, facility models.FacilityType) models.ThreatProfile {
	traits := models.ThreatTraitsTable[threat]
	label := models.ThreatLabels[threat]

	profile := models.ThreatProfile{
		Level:              threat,
		Intensity:          traits.Intensity,
		Multiplier:         traits.BaseMultiplier,
		RequiresRedundancy: traits.RequiresRedundancy,
		Requires24x7:       traits.Requires24x7,
		PriorityProducts:   append([]models.ProductName(nil), traits.PriorityProducts...),
	}
	profile.Reasoning = append(profile.Reasoning,
		fmt.Sprintf("%s carries intensity %.1f and a base quantity multiplier of %.2fx", label, traits.Intensity, traits.BaseMultiplier))

	req := models.Facilities[facility]
	switch rank := req.ThreatRank(threat); {
	case rank == 0:
		profile.Multiplier = traits.BaseMultiplier * t.PriorityBonus
		profile.Reasoning = append(profile.Reasoning,
			fmt.Sprintf("%s is the top threat priority for %s: multiplier raised to %.2fx", label, models.FacilityLabels[facility], profile.Multiplier))
	case rank > 0:
		profile.Reasoning = append(profile.Reasoning,
			fmt.Sprintf("%s is priority #%d for %s: no bonus applied", label, rank+1, models.FacilityLabels[facility]))
	default:
		profile.Reasoning = append(profile.Reasoning,
			fmt.Sprintf("%s is not a listed priority for %s", label, models.FacilityLabels[facility]))
	}

	if profile.RequiresRedundancy {
		profile.Reasoning = append(profile.Reasoning, "Redundant units required to tolerate single-unit failure")
	}
	if profile.Requires24x7 {
		profile.Reasoning = append(profile.Reasoning, "Continuous 24/7 coverage required")
	}
	return profile
}
