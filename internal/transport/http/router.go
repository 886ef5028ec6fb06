// Package httptransport assembles the process-wide HTTP router: shared
// middleware, operational endpoints and the registry API under its prefix.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"corpreg/internal/platform/metrics"
	"corpreg/internal/platform/middleware"
	"corpreg/pkg/platform/middleware/metadata"
	"corpreg/pkg/platform/middleware/requesttime"
)

const defaultRequestTimeout = 30 * time.Second

// API mounts resource routes on a chi router.
type API interface {
	Register(r chi.Router)
}

// Config carries everything NewRouter wires together. Metrics, Metrics
// handler and health checks are optional.
type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	APIPrefix      string
	CORSOrigins    []string
	RequestTimeout time.Duration
	Service        ServiceInfo
	Checks         []HealthCheck
}

// NewRouter wires all public endpoints.
func NewRouter(cfg Config, api API) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.LatencyMiddleware(cfg.Metrics))

	r.Get("/", handleInfo(cfg.Service))
	r.Get("/health", handleHealth(cfg.Checks))
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route(cfg.APIPrefix, func(sub chi.Router) {
		sub.Use(middleware.Timeout(timeout))
		sub.Use(middleware.ContentTypeJSON)
		api.Register(sub)
	})
	return r
}
