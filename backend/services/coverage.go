// ABOUTME: Coverage calculator mapping coverage buckets to required distances
// ABOUTME: Demanding threat levels size against the bucket's upper bound

package services

import "github.com/Atlas00000/terra-client/backend/models"

// RequiredCoverage returns the distance in km a deployment must span.
// Multi-threat, perimeter-security and surveillance-monitoring use the conservative bound.
func RequiredCoverage(area models.CoverageArea, threat models.ThreatLevel) float64 {
	bucket := models.CoverageBuckets[area]
	switch threat {
	case models.ThreatMultiThreat, models.ThreatPerimeterSecurity, models.ThreatSurveillanceMonitoring:
		return bucket.ConservativeKm
	default:
		return bucket.StandardKm
	}
}
