// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds a full handler chain from environment-driven config

package e2e

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Atlas00000/terra-client/backend/cache"
	"github.com/Atlas00000/terra-client/backend/config"
	"github.com/Atlas00000/terra-client/backend/handlers"
	"github.com/Atlas00000/terra-client/backend/middleware"
	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/backend/services"
)

// withTestEnv points the inquiry store at a temp dir and sets extra vars.
// t.Setenv restores the originals when the test ends.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    withTestEnv(t, map[string]string{
//	        "CORS_ALLOWED_ORIGINS": "https://example.com",
//	    })
//	}
func withTestEnv(t *testing.T, extra map[string]string) {
	t.Helper()

	t.Setenv("INQUIRY_DB_PATH", filepath.Join(t.TempDir(), "inquiries.db"))
	for key, value := range extra {
		t.Setenv(key, value)
	}
}

// newServer loads config from the environment and serves every route
// through the same middleware chain as main.go.
func newServer(t *testing.T) (*httptest.Server, *handlers.Handler, *services.InquiryStore) {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}

	store, err := services.NewInquiryStore(cfg.InquiryDBPath)
	if err != nil {
		t.Fatalf("NewInquiryStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	c := cache.New[models.MatrixResponse](time.Duration(cfg.CacheTTL) * time.Second)
	t.Cleanup(c.Close)

	h := handlers.NewHandler(cfg, services.NewEngine(services.DefaultTuning()), c, store, services.NewMetrics())

	var writeLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		writeLimiter = middleware.NewRateLimiter(cfg.RateLimitWrite, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
	}
	cors := middleware.CORS(cfg.CORSAllowedOrigins)

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.Write {
			limiter = writeLimiter
		}
		mux.HandleFunc(route.Pattern(), middleware.Chain(route.Handler,
			middleware.LogRequest, middleware.Recover, cors,
			middleware.RateLimit(limiter, middleware.ClientIP),
		))
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, h, store
}
