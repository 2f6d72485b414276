package http

import (
	"net/http"
	"strings"

	"github.com/IgorGrieder/shortlink/internal/config"
	"github.com/IgorGrieder/shortlink/internal/infrastructure/telemetry"
	"github.com/IgorGrieder/shortlink/internal/processing/links"
	"github.com/IgorGrieder/shortlink/internal/transport/http/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var spanNames = map[string]string{
	"GET /health":        "health",
	"GET /ready":         "ready",
	"GET /metrics":       "metrics",
	"POST /api/generate": "links.generate",
	"GET /s/{alias}":     "links.redirect",
	"GET /s/{$}":         "links.redirect",
	"GET /{alias}":       "links.redirect",
}

type RouterOptions struct {
	EnableCORS    bool
	EnableLogging bool
	EnableMetrics bool

	// Ping backs GET /ready; nil means always ready.
	Ping Pinger
}

func DefaultRouterOptions() RouterOptions {
	return RouterOptions{
		EnableCORS:    true,
		EnableLogging: true,
		EnableMetrics: true,
	}
}

func NewRouter(cfg *config.Config, linkService *links.Service) http.Handler {
	return NewRouterWithOptions(cfg, linkService, DefaultRouterOptions())
}

// NewRouterWithOptions mounts both public route shapes on one mux: the
// /s/{alias} form and the bare /{alias} form share the same handler.
func NewRouterWithOptions(cfg *config.Config, linkService *links.Service, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	healthHandler := NewHealthHandler(opts.Ping)
	linksHandler := NewLinksHandler(linkService, cfg.Shortener.RedirectStatus)

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.Handle("GET /metrics", healthHandler.Metrics())

	mux.HandleFunc("POST /api/generate", linksHandler.Generate)

	mux.HandleFunc("GET /s/{$}", linksHandler.Redirect)
	mux.HandleFunc("GET /s/{alias}", linksHandler.Redirect)
	mux.HandleFunc("GET /{alias}", linksHandler.Redirect)

	var innerHandler http.Handler = mux
	if opts.EnableCORS {
		innerHandler = middleware.CORSMiddleware(innerHandler)
	}
	if opts.EnableLogging {
		innerHandler = middleware.LoggingMiddleware(innerHandler)
	}
	if opts.EnableMetrics {
		innerHandler = middleware.MetricsMiddleware(innerHandler)
	}

	otelOptions := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			key := r.Method + " " + r.Pattern
			if name, ok := spanNames[key]; ok {
				return name
			}
			if r.Pattern != "" {
				return r.Pattern
			}
			path := strings.TrimSpace(r.URL.Path)
			if path == "" {
				path = "/"
			}
			return path
		}),
	}

	if telemetry.TracerProvider != nil {
		otelOptions = append(otelOptions, otelhttp.WithTracerProvider(telemetry.TracerProvider))
	}

	return otelhttp.NewHandler(innerHandler, cfg.App.Name, otelOptions...)
}
