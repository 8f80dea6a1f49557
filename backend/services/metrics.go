// ABOUTME: Prometheus metrics for recommendations and lead capture
// ABOUTME: Registered on a private registry exposed at /metrics

package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Atlas00000/terra-client/backend/models"
)

// Metrics holds the service's collectors
type Metrics struct {
	registry *prometheus.Registry

	RecommendationsTotal *prometheus.CounterVec
	RecommendationScore  prometheus.Histogram
	ValidationWarnings   *prometheus.CounterVec
	InquiriesTotal       *prometheus.CounterVec
	MatrixBuildsTotal    prometheus.Counter
}

// NewMetrics creates a registry with all collectors initialized
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.RecommendationsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "terra_recommendations_total",
			Help: "Total number of recommendations generated",
		},
		[]string{"facility", "threat", "confidence"},
	)

	m.RecommendationScore = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "terra_recommendation_score",
			Help:    "Overall score of generated recommendations",
			Buckets: []float64{40, 50, 60, 70, 80, 90, 100},
		},
	)

	m.ValidationWarnings = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "terra_validation_warnings_total",
			Help: "Total number of validation warnings attached to recommendations",
		},
		[]string{"facility"},
	)

	m.InquiriesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "terra_inquiries_total",
			Help: "Total number of lead-capture submissions stored",
		},
		[]string{"kind"},
	)

	m.MatrixBuildsTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "terra_matrix_builds_total",
			Help: "Total number of recommendation matrix builds (cache misses)",
		},
	)

	return m
}

// Registry returns the underlying Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRecommendation records one served recommendation
func (m *Metrics) RecordRecommendation(rec models.ProductRecommendation) {
	confidence := "unknown"
	if rec.Score != nil {
		confidence = string(rec.Score.Confidence)
		m.RecommendationScore.Observe(float64(rec.Score.Overall))
	}
	m.RecommendationsTotal.WithLabelValues(string(rec.FacilityType), string(rec.ThreatLevel), confidence).Inc()
	if rec.Validation != nil && len(rec.Validation.Warnings) > 0 {
		m.ValidationWarnings.WithLabelValues(string(rec.FacilityType)).Add(float64(len(rec.Validation.Warnings)))
	}
}

// RecordInquiry records one stored lead-capture submission
func (m *Metrics) RecordInquiry(kind models.InquiryKind) {
	m.InquiriesTotal.WithLabelValues(string(kind)).Inc()
}
