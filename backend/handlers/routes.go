// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers, and limit class

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
	Write   bool             // lead-capture endpoint, uses the stricter rate limit
}

// Pattern returns the ServeMux pattern for the route.
func (r Route) Pattern() string {
	return r.Method + " " + r.Path
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Configurator
		{Method: http.MethodGet, Path: "/api/v1/configurator/options", Handler: h.GetOptions},
		{Method: http.MethodPost, Path: "/api/v1/configurator/recommendation", Handler: h.PostRecommendation},
		{Method: http.MethodGet, Path: "/api/v1/configurator/recommendation", Handler: h.GetRecommendation},
		{Method: http.MethodGet, Path: "/api/v1/configurator/matrix", Handler: h.GetMatrix},

		// Catalog
		{Method: http.MethodGet, Path: "/api/v1/products", Handler: h.GetProducts},
		{Method: http.MethodGet, Path: "/api/v1/facilities", Handler: h.GetFacilities},

		// Lead capture
		{Method: http.MethodPost, Path: "/api/v1/rfq", Handler: h.SubmitRFQ, Write: true},
		{Method: http.MethodPost, Path: "/api/v1/inquiries", Handler: h.SubmitInquiry, Write: true},
		{Method: http.MethodGet, Path: "/api/v1/leads", Handler: h.ListLeads},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
