//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "research/pkg/platform/audit"
	"research/pkg/platform/audit/store/kafka"
	"research/pkg/testutil/containers"
)

type KafkaAuditSuite struct {
	suite.Suite
	redpanda *containers.RedpandaContainer
}

func TestKafkaAuditSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaAuditSuite))
}

func (s *KafkaAuditSuite) SetupSuite() {
	s.redpanda = containers.GetManager().GetRedpanda(s.T())
}

func (s *KafkaAuditSuite) TestAppendProducesKeyedRecord() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := "audit-" + uuid.NewString()
	store, err := kafka.New([]string{s.redpanda.Broker}, topic)
	s.Require().NoError(err)
	defer store.Close()

	s.Require().NoError(store.EnsureTopic(ctx, 1, 1))
	s.Require().NoError(store.EnsureTopic(ctx, 1, 1), "existing topic is not an error")
	s.Require().NoError(store.Ping(ctx))

	event := audit.Event{
		ID:         uuid.NewString(),
		Action:     audit.ActionReliabilityUpdated,
		Category:   audit.CategoryCompliance,
		EvidenceID: 12,
		Reason:     "source retracted",
	}
	s.Require().NoError(store.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().Len(records, 1)

	s.Equal("12", string(records[0].Key))
	var got audit.Event
	s.Require().NoError(json.Unmarshal(records[0].Value, &got))
	s.Equal(event.ID, got.ID)
	s.Equal(audit.ActionReliabilityUpdated, got.Action)
	s.Equal("source retracted", got.Reason)
}

func (s *KafkaAuditSuite) TestNewValidatesArguments() {
	_, err := kafka.New(nil, "topic")
	s.Error(err)

	_, err = kafka.New([]string{s.redpanda.Broker}, "")
	s.Error(err)
}
