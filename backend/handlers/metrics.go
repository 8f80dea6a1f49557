// ABOUTME: Prometheus exposition handler
// ABOUTME: Serves the service's private registry at /metrics

package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the collectors registered by services.NewMetrics.
func (h *Handler) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{})
}
