// ABOUTME: Lead-capture models for quote requests and general inquiries
// ABOUTME: Free-form JSON payloads stored verbatim with a kind and timestamp

package models

import (
	"encoding/json"
	"time"
)

// InquiryKind distinguishes quote requests from general inquiries
type InquiryKind string

const (
	InquiryKindRFQ     InquiryKind = "rfq"
	InquiryKindGeneral InquiryKind = "inquiry"
)

// Valid reports whether k is a known kind
func (k InquiryKind) Valid() bool {
	return k == InquiryKindRFQ || k == InquiryKindGeneral
}

// Inquiry is a persisted lead-capture submission
type Inquiry struct {
	ID        string          `json:"id"`
	Kind      InquiryKind     `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// InquiryResponse acknowledges a stored submission
type InquiryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// LeadList is the staff-facing listing of stored submissions, newest first
type LeadList struct {
	Leads []Inquiry `json:"leads"`
	Count int       `json:"count"`
}
