package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "research/pkg/platform/audit"
	"research/pkg/platform/audit/store/memory"
)

func TestWorker_ReturnsWhenInboxClosed(t *testing.T) {
	store := memory.NewInMemoryStore()
	inbox := make(chan audit.Event, 3)
	inbox <- audit.Event{EvidenceID: 1, Action: audit.ActionEvidenceCreated}
	inbox <- audit.Event{EvidenceID: 1, Action: audit.ActionTagsAdded}
	close(inbox)

	err := NewWorker(store, inbox).Run(context.Background())
	require.NoError(t, err)

	events, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestWorker_FlushesOnCancel(t *testing.T) {
	store := memory.NewInMemoryStore()
	inbox := make(chan audit.Event, 3)
	for range 3 {
		inbox <- audit.Event{EvidenceID: 2, Action: audit.ActionClaimLinked}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWorker(store, inbox).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	events, err := store.ListByEvidence(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

type failingStore struct{}

func (failingStore) Append(context.Context, audit.Event) error { return errors.New("boom") }

func TestWorker_KeepsRunningAfterAppendFailure(t *testing.T) {
	metrics := audit.NewMetrics(prometheus.NewRegistry())
	inbox := make(chan audit.Event, 2)
	inbox <- audit.Event{Action: audit.ActionEvidenceCreated}
	inbox <- audit.Event{Action: audit.ActionEvidenceCreated}
	close(inbox)

	err := NewWorker(failingStore{}, inbox, WithMetrics(metrics)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.PersistFailures))
}
