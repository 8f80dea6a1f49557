// ABOUTME: Entry point for the Terra product stack configurator backend
// ABOUTME: Serves the recommendation engine and lead capture over HTTP

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Atlas00000/terra-client/backend/cache"
	"github.com/Atlas00000/terra-client/backend/config"
	"github.com/Atlas00000/terra-client/backend/handlers"
	"github.com/Atlas00000/terra-client/backend/logger"
	"github.com/Atlas00000/terra-client/backend/middleware"
	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/backend/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize structured logging
	logger.Init()

	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("Failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Terra Configurator Backend")

	tuning, err := services.LoadTuning(cfg.TuningFile)
	if err != nil {
		slog.Error("Failed to load engine tuning", "file", cfg.TuningFile, "error", err)
		os.Exit(1)
	}
	if cfg.TuningFile != "" {
		slog.Info("Engine tuning loaded", "file", cfg.TuningFile)
	}
	engine := services.NewEngine(tuning)

	store, err := services.NewInquiryStore(cfg.InquiryDBPath)
	if err != nil {
		slog.Error("Failed to open inquiry store", "path", cfg.InquiryDBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Inquiry store ready", "path", cfg.InquiryDBPath)

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	matrixCache := cache.New[models.MatrixResponse](cacheTTL)
	defer matrixCache.Close()
	slog.Info("Cache initialized", "ttl", cacheTTL)

	h := handlers.NewHandler(cfg, engine, matrixCache, store, services.NewMetrics())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}

// newRouter registers every API route with logging, recovery, CORS and the
// route's rate limit, plus /metrics outside the API prefix.
func newRouter(cfg *config.Config, h *handlers.Handler) *http.ServeMux {
	var writeLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		writeLimiter = middleware.NewRateLimiter(cfg.RateLimitWrite, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		slog.Info("Rate limiting enabled", "write_per_min", cfg.RateLimitWrite, "default_per_min", cfg.RateLimitDefault)
	} else {
		slog.Warn("Rate limiting disabled")
	}

	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	preflight := cors(func(w http.ResponseWriter, r *http.Request) {})

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.Write {
			limiter = writeLimiter
		}
		mux.HandleFunc(route.Pattern(), middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.Recover,
			cors,
			middleware.RateLimit(limiter, middleware.ClientIP),
		))
		if route.Method == http.MethodPost {
			mux.HandleFunc(http.MethodOptions+" "+route.Path, preflight)
		}
	}
	mux.Handle("GET /metrics", h.MetricsHandler())

	return mux
}
