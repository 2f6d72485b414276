package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCreated     = "created"
	outcomeRedirected  = "redirected"
	outcomeInvalidJSON = "invalid_json"
	outcomeNoURL       = "no_url"
	outcomeUnavailable = "unavailable"
	outcomeExhausted   = "exhausted"
	outcomeBadRequest  = "bad_request"
	outcomeNotFound    = "not_found"
	outcomeError       = "error"
)

var (
	allocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortlink_allocations_total",
			Help: "Alias allocation requests by outcome",
		},
		[]string{"outcome"},
	)

	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortlink_resolutions_total",
			Help: "Alias resolution requests by outcome",
		},
		[]string{"outcome"},
	)
)
