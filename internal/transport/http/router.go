package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"research/internal/platform/middleware"
	"research/pkg/platform/middleware/metadata"
	"research/pkg/platform/middleware/requesttime"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// RouterConfig carries the cross-cutting settings of the public router.
type RouterConfig struct {
	Logger         *slog.Logger
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// NewRouter applies the global middleware chain, mounts each feature handler
// and exposes /metrics when a gatherer is configured.
func NewRouter(cfg RouterConfig, handlers ...RouteRegistrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(middleware.CORSOptions{AllowedOrigins: cfg.AllowedOrigins}))

	for _, h := range handlers {
		h.Register(r)
	}

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
