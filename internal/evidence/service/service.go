// Package service implements evidence operations on top of a Store.
package service

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"math"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"research/internal/evidence/extract"
	"research/internal/evidence/metrics"
	"research/internal/evidence/models"
	"research/internal/evidence/store"
	dErrors "research/pkg/domain-errors"
	"research/pkg/platform/audit"
	"research/pkg/platform/sentinel"
	"research/pkg/requestcontext"
)

const tracerName = "research/internal/evidence/service"

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// CreateCommand carries validated input for Create. Type is expected to be
// normalized already; unknown types still get the neutral base score.
type CreateCommand struct {
	Content   string
	SessionID string
	Type      models.EvidenceType
	Source    string
}

// Service orchestrates evidence scoring, linking and queries.
type Service struct {
	store          store.Store
	extractor      *extract.Extractor
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
	now            func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithExtractor replaces the default marker set used by
// ExtractPotentialEvidence.
func WithExtractor(x *extract.Extractor) Option {
	return func(s *Service) {
		s.extractor = x
	}
}

// WithClock sets the fallback clock used when the context carries no
// request time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:     st,
		extractor: extract.New(),
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create scores and stores new evidence.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (_ *models.Evidence, err error) {
	ctx, finish := s.start(ctx, "Create", attribute.String("evidence.session_id", cmd.SessionID))
	defer func() { finish(err) }()

	e := models.NewEvidence(cmd.Content, cmd.SessionID, cmd.Type, cmd.Source, s.clock(ctx))
	created, err := s.store.Create(ctx, e)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create evidence")
	}

	s.metrics.IncEvidenceCreated(string(created.Type), created.ReliabilityScore)
	s.emit(ctx, audit.Event{
		Action:     audit.ActionEvidenceCreated,
		SessionID:  created.SessionID,
		EvidenceID: created.ID,
	})
	s.logger.InfoContext(ctx, "evidence created",
		"request_id", requestcontext.RequestID(ctx),
		"evidence_id", created.ID,
		"session_id", created.SessionID,
		"type", created.Type,
		"reliability", created.ReliabilityScore,
	)
	return created, nil
}

// LinkToClaim appends a claim link whose strength is derived from the
// evidence's current reliability. Missing evidence is CodeNotFound.
func (s *Service) LinkToClaim(ctx context.Context, evidenceID, claimID int64, linkType models.LinkType) (_ *models.Evidence, err error) {
	ctx, finish := s.start(ctx, "LinkToClaim",
		attribute.Int64("evidence.id", evidenceID),
		attribute.Int64("claim.id", claimID),
	)
	defer func() { finish(err) }()

	now := s.clock(ctx)
	var link models.ClaimLink
	updated, err := s.store.Update(ctx, evidenceID, func(e *models.Evidence) error {
		link = e.LinkClaim(claimID, linkType, now)
		return nil
	})
	if err != nil {
		return nil, s.translate(err, "failed to link claim")
	}

	s.metrics.IncClaimLinked(string(linkType))
	s.emit(ctx, audit.Event{
		Action:     audit.ActionClaimLinked,
		SessionID:  updated.SessionID,
		EvidenceID: updated.ID,
		ClaimID:    claimID,
	})
	s.logger.InfoContext(ctx, "claim linked",
		"request_id", requestcontext.RequestID(ctx),
		"evidence_id", evidenceID,
		"claim_id", claimID,
		"link_type", linkType,
		"strength", link.Strength,
	)
	return updated, nil
}

// UpdateReliability overrides the score, clamped to [0, 1]. Strengths of
// existing claim links are left as they were.
func (s *Service) UpdateReliability(ctx context.Context, evidenceID int64, score float64, reason string) (_ *models.Evidence, err error) {
	ctx, finish := s.start(ctx, "UpdateReliability", attribute.Int64("evidence.id", evidenceID))
	defer func() { finish(err) }()

	if math.IsNaN(score) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "score must be a number")
	}

	now := s.clock(ctx)
	updated, err := s.store.Update(ctx, evidenceID, func(e *models.Evidence) error {
		e.SetReliability(score, reason, now)
		return nil
	})
	if err != nil {
		return nil, s.translate(err, "failed to update reliability")
	}

	s.metrics.IncReliabilityUpdated()
	s.emit(ctx, audit.Event{
		Action:     audit.ActionReliabilityUpdated,
		SessionID:  updated.SessionID,
		EvidenceID: updated.ID,
		Reason:     reason,
	})
	return updated, nil
}

// AddTags appends tags in order, keeping duplicates.
func (s *Service) AddTags(ctx context.Context, evidenceID int64, tags []string) (_ *models.Evidence, err error) {
	ctx, finish := s.start(ctx, "AddTags",
		attribute.Int64("evidence.id", evidenceID),
		attribute.Int("tags.count", len(tags)),
	)
	defer func() { finish(err) }()

	updated, err := s.store.Update(ctx, evidenceID, func(e *models.Evidence) error {
		e.AddTags(tags)
		return nil
	})
	if err != nil {
		return nil, s.translate(err, "failed to add tags")
	}

	s.metrics.AddTags(len(tags))
	s.emit(ctx, audit.Event{
		Action:     audit.ActionTagsAdded,
		SessionID:  updated.SessionID,
		EvidenceID: updated.ID,
	})
	return updated, nil
}

// ExtractPotentialEvidence returns sentences containing evidentiary
// markers. It never touches the store.
func (s *Service) ExtractPotentialEvidence(ctx context.Context, text string) []string {
	_, finish := s.start(ctx, "ExtractPotentialEvidence", attribute.Int("text.length", len(text)))
	sentences := s.extractor.Extract(text)
	s.metrics.ObserveExtraction(len(sentences))
	finish(nil)
	return sentences
}

// ListBySession returns the session's evidence, newest first.
func (s *Service) ListBySession(ctx context.Context, sessionID string) (_ []*models.Evidence, err error) {
	ctx, finish := s.start(ctx, "ListBySession", attribute.String("evidence.session_id", sessionID))
	defer func() { finish(err) }()

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(items)
	return items, nil
}

// ListByType returns the session's evidence of type t, most reliable first.
func (s *Service) ListByType(ctx context.Context, sessionID string, t models.EvidenceType) (_ []*models.Evidence, err error) {
	ctx, finish := s.start(ctx, "ListByType",
		attribute.String("evidence.session_id", sessionID),
		attribute.String("evidence.type", string(t)),
	)
	defer func() { finish(err) }()

	return s.filterByReliability(ctx, sessionID, func(e *models.Evidence) bool {
		return e.Type == t
	})
}

// ListForClaim returns session evidence linked to claimID, most reliable first.
func (s *Service) ListForClaim(ctx context.Context, sessionID string, claimID int64) (_ []*models.Evidence, err error) {
	ctx, finish := s.start(ctx, "ListForClaim",
		attribute.String("evidence.session_id", sessionID),
		attribute.Int64("claim.id", claimID),
	)
	defer func() { finish(err) }()

	return s.filterByReliability(ctx, sessionID, func(e *models.Evidence) bool {
		return e.HasClaim(claimID)
	})
}

// Search matches term against content, source and tags ignoring case.
// An empty term returns the whole session.
func (s *Service) Search(ctx context.Context, sessionID, term string) (_ []*models.Evidence, err error) {
	ctx, finish := s.start(ctx, "Search", attribute.String("evidence.session_id", sessionID))
	defer func() { finish(err) }()

	return s.filterByReliability(ctx, sessionID, func(e *models.Evidence) bool {
		return e.Matches(term)
	})
}

// Statistics aggregates the session's evidence.
func (s *Service) Statistics(ctx context.Context, sessionID string) (_ *models.Statistics, err error) {
	ctx, finish := s.start(ctx, "Statistics", attribute.String("evidence.session_id", sessionID))
	defer func() { finish(err) }()

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	stats := models.ComputeStatistics(items)
	return &stats, nil
}

func (s *Service) load(ctx context.Context, sessionID string) ([]*models.Evidence, error) {
	items, err := s.store.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load evidence")
	}
	return items, nil
}

func (s *Service) filterByReliability(ctx context.Context, sessionID string, keep func(*models.Evidence) bool) ([]*models.Evidence, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items = slices.DeleteFunc(items, func(e *models.Evidence) bool { return !keep(e) })
	sortByReliabilityDesc(items)
	return items, nil
}

// sortByCreatedDesc orders newest first; equal timestamps put the higher
// id first.
func sortByCreatedDesc(items []*models.Evidence) {
	slices.SortStableFunc(items, func(a, b *models.Evidence) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// sortByReliabilityDesc orders most reliable first; equal scores keep
// ascending id order.
func sortByReliabilityDesc(items []*models.Evidence) {
	slices.SortStableFunc(items, func(a, b *models.Evidence) int {
		if c := cmp.Compare(b.ReliabilityScore, a.ReliabilityScore); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func (s *Service) clock(ctx context.Context) time.Time {
	if t, ok := requestcontext.Time(ctx); ok {
		return t
	}
	return s.now()
}

func (s *Service) translate(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "evidence not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

// emit publishes best-effort: audit failures are logged, never returned.
func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	event.Timestamp = s.clock(ctx)
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"request_id", event.RequestID,
			"action", event.Action,
			"evidence_id", event.EvidenceID,
			"error", err,
		)
	}
}

// start opens a span and returns a finisher that records the outcome on
// both the span and the operation histogram.
func (s *Service) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	began := time.Now()
	ctx, span := s.tracer.Start(ctx, "evidence."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		outcome := "ok"
		if err != nil {
			outcome = string(dErrors.CodeOf(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
		s.metrics.ObserveOperation(op, outcome, time.Since(began).Seconds())
	}
}
