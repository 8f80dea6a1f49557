// ABOUTME: Panic recovery middleware for HTTP handlers
// ABOUTME: Converts handler panics into logged JSON 500 responses

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover turns a panic in next into a 500 JSON error and logs the stack.
func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				slog.Error("Handler panic",
					"request_id", RequestID(r.Context()),
					"path", sanitizePath(r.URL.Path),
					"panic", p,
					"stack", string(debug.Stack()),
				)
				writeJSONError(w, "The server hit an unexpected error. Please try again.", http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}
