package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/ratelimit"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const readinessTimeout = 2 * time.Second

// RouteRegistrar mounts a feature's routes.
type RouteRegistrar interface {
	Register(mux *http.ServeMux)
}

// Check is a named dependency probe used by /readyz.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Dependencies groups what the router needs beyond config and logger.
// Limiter may be nil.
type Dependencies struct {
	Routes   []RouteRegistrar
	Limiter  *ratelimit.Limiter
	Metrics  *Metrics
	Gatherer prometheus.Gatherer
	Checks   []Check
}

// NewRouter wires API routes, health, metrics and the middleware stack.
func NewRouter(cfg *config.App, logger zerolog.Logger, deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		failed := map[string]string{}
		for _, check := range deps.Checks {
			if err := check.Ping(ctx); err != nil {
				logger.Error().Err(err).Str("dependency", check.Name).Msg("dependency ping failed")
				failed[check.Name] = err.Error()
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if len(failed) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{"status": "unavailable", "failed": failed})
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if deps.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, routes := range deps.Routes {
		routes.Register(mux)
	}

	mux.Handle("/", httperrors.NotFoundHandler())

	middlewares := []func(http.Handler) http.Handler{
		httperrors.Recoverer(logger),
		requestLogger(logger),
	}
	if deps.Metrics != nil {
		middlewares = append(middlewares, deps.Metrics.Middleware)
	}
	middlewares = append(middlewares, apiOnly(corsMiddleware(cfg.CORS)))
	if deps.Limiter != nil {
		middlewares = append(middlewares, apiOnly(deps.Limiter.Middleware))
	}

	return chain(mux, middlewares...)
}

// NewHTTPServer builds the API server around NewRouter.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Dependencies) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg, logger, deps),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
