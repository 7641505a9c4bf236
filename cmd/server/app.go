package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"research/internal/evidence/extract"
	evidenceHandler "research/internal/evidence/handler"
	evidenceMetrics "research/internal/evidence/metrics"
	evidenceService "research/internal/evidence/service"
	evidenceStore "research/internal/evidence/store"
	"research/internal/health"
	"research/internal/platform/config"
	"research/internal/platform/metrics"
	redisClient "research/internal/platform/redis"
	httptransport "research/internal/transport/http"
	"research/pkg/platform/audit"
	"research/pkg/platform/audit/publisher"
	kafkaAudit "research/pkg/platform/audit/store/kafka"
	auditmemory "research/pkg/platform/audit/store/memory"
	postgresAudit "research/pkg/platform/audit/store/postgres"
	"research/pkg/platform/circuit"
)

const (
	auditTopicPartitions  = 3
	auditTopicReplication = 1
)

// app holds everything serve needs plus the resources to release on exit.
type app struct {
	router    http.Handler
	publisher *publisher.Publisher
	closers   []func()
}

func (a *app) close() {
	a.publisher.Close()
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg config.Config, log *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			for i := len(a.closers) - 1; i >= 0; i-- {
				a.closers[i]()
			}
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var checkers []health.Checker

	store, storeCheckers, err := buildEvidenceStore(ctx, cfg, a)
	if err != nil {
		return nil, err
	}
	checkers = append(checkers, storeCheckers...)

	sink, sinkCheckers, err := buildAuditStore(ctx, cfg, a)
	if err != nil {
		return nil, err
	}
	checkers = append(checkers, sinkCheckers...)
	if cfg.Audit.Sink != config.AuditSinkMemory {
		sink = audit.NewGuardedStore(sink, circuit.New("audit-"+cfg.Audit.Sink), log)
	}

	a.publisher = publisher.NewPublisher(sink,
		publisher.WithAsyncBuffer(cfg.Audit.BufferSize),
		publisher.WithLogger(log),
		publisher.WithMetrics(audit.NewMetrics(reg)),
	)

	svc := evidenceService.New(store,
		evidenceService.WithLogger(log),
		evidenceService.WithMetrics(evidenceMetrics.New(reg)),
		evidenceService.WithAuditPublisher(a.publisher),
		evidenceService.WithExtractor(extract.New(cfg.Evidence.ExtraMarkers...)),
	)

	a.router = httptransport.NewRouter(
		httptransport.RouterConfig{
			Logger:         log,
			Gatherer:       reg,
			AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		},
		health.New(log, version, health.WithCheckers(checkers...)),
		evidenceHandler.New(svc, log, metrics.New(reg),
			evidenceHandler.WithRequestTimeout(cfg.Server.RequestTimeout)),
	)
	return a, nil
}

func buildEvidenceStore(ctx context.Context, cfg config.Config, a *app) (evidenceStore.Store, []health.Checker, error) {
	switch cfg.Evidence.StoreBackend {
	case config.StoreRedis:
		rc, err := redisClient.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect evidence store: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rc.Close() })
		return evidenceStore.NewRedisStore(rc.Client), []health.Checker{rc}, nil
	default:
		return evidenceStore.NewInMemoryStore(), nil, nil
	}
}

func buildAuditStore(ctx context.Context, cfg config.Config, a *app) (audit.Store, []health.Checker, error) {
	switch cfg.Audit.Sink {
	case config.AuditSinkPostgres:
		db, err := postgresAudit.Open(ctx, cfg.Audit.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		st := postgresAudit.New(db)
		if err := st.Migrate(ctx); err != nil {
			return nil, nil, err
		}
		return st, []health.Checker{health.CheckFunc("postgres", db.PingContext)}, nil
	case config.AuditSinkKafka:
		st, err := kafkaAudit.New(cfg.Audit.KafkaBrokers, cfg.Audit.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, st.Close)
		if err := st.EnsureTopic(ctx, auditTopicPartitions, auditTopicReplication); err != nil {
			return nil, nil, err
		}
		return st, []health.Checker{health.CheckFunc("kafka", st.Ping)}, nil
	default:
		return auditmemory.NewInMemoryStore(), nil, nil
	}
}
