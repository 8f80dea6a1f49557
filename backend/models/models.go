// ABOUTME: Shared API response models for the configurator backend
// ABOUTME: JSON-serializable structures matching frontend expectations

package models

// ErrorResponse represents an error response.
// Message carries the user-facing text the lead-capture forms display inline.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse reports service status for the CLI and load balancers
type HealthResponse struct {
	Status        string `json:"status"`
	Engine        string `json:"engine"`
	InquiryStore  string `json:"inquiry_store"`
	MatrixCached  bool   `json:"matrix_cached"`
	TuningSource  string `json:"tuning_source"`
	ProductCount  int    `json:"product_count"`
	FacilityCount int    `json:"facility_count"`
}
