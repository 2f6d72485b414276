package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IgorGrieder/shortlink/internal/constants"
	"github.com/IgorGrieder/shortlink/internal/infrastructure/logger"
	"github.com/IgorGrieder/shortlink/internal/infrastructure/telemetry"
	"github.com/IgorGrieder/shortlink/internal/processing/links"
	"github.com/IgorGrieder/shortlink/pkg/httputils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

type LinksHandler struct {
	svc            *links.Service
	redirectStatus int
}

func NewLinksHandler(svc *links.Service, redirectStatus int) *LinksHandler {
	if redirectStatus == 0 {
		redirectStatus = http.StatusFound
	}
	return &LinksHandler{svc: svc, redirectStatus: redirectStatus}
}

type generateRequest struct {
	URL   string `json:"url"`
	Alias string `json:"alias"`
}

func (h *LinksHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		allocationsTotal.WithLabelValues(outcomeInvalidJSON).Inc()
		httputils.WriteAPIError(w, r, constants.ErrInvalidJSON)
		return
	}

	ctx, span := telemetry.Tracer.Start(r.Context(), "links.allocate")
	defer span.End()
	span.SetAttributes(attribute.Bool("shortlink.alias_requested", req.Alias != ""))

	alias, err := h.svc.Generate(ctx, links.GenerateInput{URL: req.URL, Alias: req.Alias})
	if err != nil {
		switch {
		case errors.Is(err, links.ErrUnavailable):
			allocationsTotal.WithLabelValues(outcomeUnavailable).Inc()
			httputils.WriteAPIError(w, r, constants.ErrUnavailable)
		case errors.Is(err, links.ErrNoURL):
			allocationsTotal.WithLabelValues(outcomeNoURL).Inc()
			httputils.WriteAPIError(w, r, constants.ErrNoURL)
		case errors.Is(err, links.ErrAliasSpaceExhausted):
			allocationsTotal.WithLabelValues(outcomeExhausted).Inc()
			span.SetStatus(codes.Error, err.Error())
			logger.Error("alias space exhausted", zap.Int("attempts", links.MaxAttempts))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		default:
			allocationsTotal.WithLabelValues(outcomeError).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error("failed to generate alias", zap.Error(err))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		}
		return
	}

	allocationsTotal.WithLabelValues(outcomeCreated).Inc()
	span.SetAttributes(attribute.String("shortlink.alias", alias))
	httputils.WriteJSON(w, r, http.StatusOK, httputils.APIResponse{
		Success: true,
		Alias:   alias,
	})
}

// Redirect writes Location verbatim instead of using http.Redirect, which
// would rewrite targets without a scheme relative to the request path.
func (h *LinksHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	alias := r.PathValue("alias")

	link, err := h.svc.Resolve(r.Context(), alias)
	if err != nil {
		switch {
		case errors.Is(err, links.ErrAliasRequired):
			resolutionsTotal.WithLabelValues(outcomeBadRequest).Inc()
			httputils.WriteAPIError(w, r, constants.ErrAliasNotProvided)
		case errors.Is(err, links.ErrNotFound):
			resolutionsTotal.WithLabelValues(outcomeNotFound).Inc()
			httputils.WriteAPIError(w, r, constants.ErrAliasNotFound)
		default:
			resolutionsTotal.WithLabelValues(outcomeError).Inc()
			logger.Error("failed to resolve alias", zap.Error(err), zap.String("alias", alias))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		}
		return
	}

	resolutionsTotal.WithLabelValues(outcomeRedirected).Inc()
	w.Header().Set("Location", link.URL)
	w.WriteHeader(h.redirectStatus)
}
