package audit

import "context"

// Store persists audit events. Sinks are append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Reader is implemented by sinks that can serve events back, such as the
// in-memory and Postgres stores. Kafka is write-only from this service.
type Reader interface {
	ListByEvidence(ctx context.Context, evidenceID int64) ([]Event, error)
}
