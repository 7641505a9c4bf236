// Package health serves the service banner, status and dependency health endpoints.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"research/pkg/platform/httputil"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"

	serviceName = "Multi-Agent Research Platform"
	banner      = "Multi-Agent Research Platform API"
)

// Checker probes a single backend dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type checkFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (c checkFunc) Name() string                    { return c.name }
func (c checkFunc) Check(ctx context.Context) error { return c.fn(ctx) }

// CheckFunc adapts a ping function into a Checker.
func CheckFunc(name string, fn func(ctx context.Context) error) Checker {
	return checkFunc{name: name, fn: fn}
}

// Handler serves /, /status and /api/health.
type Handler struct {
	logger       *slog.Logger
	version      string
	checkers     []Checker
	checkTimeout time.Duration
	now          func() time.Time
}

type Option func(*Handler)

func WithCheckers(checkers ...Checker) Option {
	return func(h *Handler) {
		h.checkers = append(h.checkers, checkers...)
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func WithCheckTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.checkTimeout = d
	}
}

func New(logger *slog.Logger, version string, opts ...Option) *Handler {
	h := &Handler{
		logger:       logger,
		version:      version,
		checkTimeout: 2 * time.Second,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/status", h.handleStatus)
	r.Get("/api/health", h.handleHealth)
}

type rootResponse struct {
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type statusResponse struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Timestamp    time.Time         `json:"timestamp"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, rootResponse{
		Message:   banner,
		Status:    StatusUp,
		Timestamp: h.now(),
	})
}

func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.status(StatusUp, nil))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	deps, healthy := h.checkAll(r.Context())
	if !healthy {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, h.status(StatusDown, deps))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.status(StatusUp, deps))
}

func (h *Handler) status(status string, deps map[string]string) statusResponse {
	return statusResponse{
		Status:       status,
		Service:      serviceName,
		Version:      h.version,
		Timestamp:    h.now(),
		Dependencies: deps,
	}
}

// checkAll runs every checker concurrently under a shared timeout.
func (h *Handler) checkAll(ctx context.Context) (map[string]string, bool) {
	if len(h.checkers) == 0 {
		return nil, true
	}
	ctx, cancel := context.WithTimeout(ctx, h.checkTimeout)
	defer cancel()

	results := make([]error, len(h.checkers))
	var g errgroup.Group
	for i, c := range h.checkers {
		g.Go(func() error {
			results[i] = c.Check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	deps := make(map[string]string, len(h.checkers))
	healthy := true
	for i, c := range h.checkers {
		if err := results[i]; err != nil {
			healthy = false
			deps[c.Name()] = StatusDown
			h.logger.WarnContext(ctx, "dependency health check failed",
				"dependency", c.Name(),
				"error", err,
			)
			continue
		}
		deps[c.Name()] = StatusUp
	}
	return deps, healthy
}
