package audit

import (
	"context"
	"errors"
	"log/slog"

	"research/pkg/platform/circuit"
)

// ErrSinkUnavailable is returned while the guarded sink's circuit is open.
var ErrSinkUnavailable = errors.New("audit sink unavailable")

// GuardedStore short-circuits Append while the wrapped sink keeps failing,
// so a down Postgres or Kafka costs one error per cooldown instead of one
// timeout per event.
type GuardedStore struct {
	next    Store
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuardedStore(next Store, breaker *circuit.Breaker, logger *slog.Logger) *GuardedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuardedStore{next: next, breaker: breaker, logger: logger}
}

func (g *GuardedStore) Append(ctx context.Context, event Event) error {
	if !g.breaker.Allow() {
		return ErrSinkUnavailable
	}
	if err := g.next.Append(ctx, event); err != nil {
		if _, change := g.breaker.RecordFailure(); change.Opened {
			g.logger.WarnContext(ctx, "audit sink circuit opened",
				"sink", g.breaker.Name(),
				"error", err,
			)
		}
		return err
	}
	if _, change := g.breaker.RecordSuccess(); change.Closed {
		g.logger.InfoContext(ctx, "audit sink circuit closed", "sink", g.breaker.Name())
	}
	return nil
}
