// ABOUTME: JSON error response helper for middleware
// ABOUTME: Ensures middleware error responses match the API's JSON format

package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors models.ErrorResponse without importing the models package.
type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Code       int    `json:"code"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

// writeJSONError writes an error response as JSON with the given status code.
// Matches the format used by handlers.writeError for consistency.
func writeJSONError(w http.ResponseWriter, message string, code int) {
	writeErrorBody(w, errorBody{Error: http.StatusText(code), Message: message, Code: code})
}

func writeErrorBody(w http.ResponseWriter, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Code)
	json.NewEncoder(w).Encode(body)
}
