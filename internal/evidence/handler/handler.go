package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"research/internal/evidence/models"
	"research/internal/evidence/service"
	"research/internal/platform/metrics"
	"research/internal/platform/middleware"
	dErrors "research/pkg/domain-errors"
	"research/pkg/platform/httputil"
)

// Service defines the evidence operations the HTTP layer depends on.
type Service interface {
	Create(ctx context.Context, cmd service.CreateCommand) (*models.Evidence, error)
	LinkToClaim(ctx context.Context, evidenceID, claimID int64, linkType models.LinkType) (*models.Evidence, error)
	UpdateReliability(ctx context.Context, evidenceID int64, score float64, reason string) (*models.Evidence, error)
	AddTags(ctx context.Context, evidenceID int64, tags []string) (*models.Evidence, error)
	ExtractPotentialEvidence(ctx context.Context, text string) []string
	ListBySession(ctx context.Context, sessionID string) ([]*models.Evidence, error)
	ListByType(ctx context.Context, sessionID string, t models.EvidenceType) ([]*models.Evidence, error)
	ListForClaim(ctx context.Context, sessionID string, claimID int64) ([]*models.Evidence, error)
	Search(ctx context.Context, sessionID, term string) ([]*models.Evidence, error)
	Statistics(ctx context.Context, sessionID string) (*models.Statistics, error)
}

// Handler serves the /api/evidence routes.
type Handler struct {
	logger         *slog.Logger
	evidence       Service
	metrics        *metrics.Metrics
	requestTimeout time.Duration
}

type Option func(*Handler)

// WithRequestTimeout bounds every evidence request. Non-positive values are ignored.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

// New creates a new evidence Handler. metrics may be nil.
func New(evidence Service, logger *slog.Logger, metrics *metrics.Metrics, opts ...Option) *Handler {
	h := &Handler{
		logger:         logger,
		evidence:       evidence,
		metrics:        metrics,
		requestTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the evidence routes under /api/evidence.
func (h *Handler) Register(r chi.Router) {
	evidenceRouter := chi.NewRouter()
	evidenceRouter.Use(middleware.Timeout(h.requestTimeout))
	evidenceRouter.Use(middleware.ContentTypeJSON)
	evidenceRouter.Use(middleware.LatencyMiddleware(h.metrics))

	evidenceRouter.Post("/", h.handleCreate)
	evidenceRouter.Post("/extract", h.handleExtract)
	evidenceRouter.Route("/session/{sessionId}", func(sr chi.Router) {
		sr.Get("/", h.handleListBySession)
		sr.Get("/type/{type}", h.handleListByType)
		sr.Get("/claim/{claimId}", h.handleListForClaim)
		sr.Get("/search", h.handleSearch)
		sr.Get("/statistics", h.handleStatistics)
	})
	evidenceRouter.Route("/{evidenceId}", func(er chi.Router) {
		er.Post("/link-claim", h.handleLinkClaim)
		er.Put("/reliability", h.handleUpdateReliability)
		er.Post("/tags", h.handleAddTags)
	})

	r.Mount("/api/evidence", evidenceRouter)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateEvidenceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	e, err := h.evidence.Create(ctx, service.CreateCommand{
		Content:   req.Content,
		SessionID: req.SessionID,
		Type:      req.evidenceType,
		Source:    req.Source,
	})
	if err != nil {
		h.writeServiceError(w, ctx, requestID, "failed to create evidence", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) handleLinkClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	evidenceID, ok := h.pathID(w, r, "evidenceId")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[LinkClaimRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	e, err := h.evidence.LinkToClaim(ctx, evidenceID, *req.ClaimID, req.linkType)
	if err != nil {
		h.writeServiceError(w, ctx, requestID, "failed to link claim", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) handleUpdateReliability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	evidenceID, ok := h.pathID(w, r, "evidenceId")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateReliabilityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	e, err := h.evidence.UpdateReliability(ctx, evidenceID, *req.Score, req.Reason)
	if err != nil {
		h.writeServiceError(w, ctx, requestID, "failed to update reliability", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) handleAddTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	evidenceID, ok := h.pathID(w, r, "evidenceId")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddTagsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	e, err := h.evidence.AddTags(ctx, evidenceID, req.Tags)
	if err != nil {
		h.writeServiceError(w, ctx, requestID, "failed to add tags", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ExtractEvidenceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.evidence.ExtractPotentialEvidence(ctx, req.Text))
}

func (h *Handler) handleListBySession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.evidence.ListBySession(ctx, chi.URLParam(r, "sessionId"))
	h.writeList(w, ctx, items, err)
}

func (h *Handler) handleListByType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := models.ParseEvidenceType(chi.URLParam(r, "type"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := h.evidence.ListByType(ctx, chi.URLParam(r, "sessionId"), t)
	h.writeList(w, ctx, items, err)
}

func (h *Handler) handleListForClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID, ok := h.pathID(w, r, "claimId")
	if !ok {
		return
	}
	items, err := h.evidence.ListForClaim(ctx, chi.URLParam(r, "sessionId"), claimID)
	h.writeList(w, ctx, items, err)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	if !query.Has("q") {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "query parameter q is required"))
		return
	}
	items, err := h.evidence.Search(ctx, chi.URLParam(r, "sessionId"), query.Get("q"))
	h.writeList(w, ctx, items, err)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.evidence.Statistics(ctx, chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeServiceError(w, ctx, middleware.GetRequestID(ctx), "failed to compute statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeList(w http.ResponseWriter, ctx context.Context, items []*models.Evidence, err error) {
	if err != nil {
		h.writeServiceError(w, ctx, middleware.GetRequestID(ctx), "failed to list evidence", err)
		return
	}
	if items == nil {
		items = []*models.Evidence{}
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

// pathID parses a positive int64 URL parameter, writing 400 on failure.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, ctx context.Context, requestID, msg string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestID,
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestID,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
