package middleware

import (
	"net/http"

	"github.com/IgorGrieder/shortlink/pkg/httputils"
	"github.com/rs/cors"
)

// CORSMiddleware lets browser front ends on any origin call the API.
func CORSMiddleware(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders: []string{
			"Content-Type",
			"Accept",
			"Origin",
			"X-Requested-With",
			httputils.CorrelationIDHeader,
			// OpenTelemetry headers
			"traceparent",
			"tracestate",
			"baggage",
		},
		ExposedHeaders: []string{
			httputils.CorrelationIDHeader,
			"Location",
		},
	})

	return c.Handler(next)
}
