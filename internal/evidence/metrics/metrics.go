package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for evidence operations.
type Metrics struct {
	EvidenceCreated    *prometheus.CounterVec
	ClaimsLinked       *prometheus.CounterVec
	ReliabilityUpdates prometheus.Counter
	TagsAdded          prometheus.Counter
	ExtractedSentences prometheus.Histogram
	InitialReliability prometheus.Histogram
	OperationDuration  *prometheus.HistogramVec
}

// New registers evidence metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EvidenceCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "research_evidence_created_total",
			Help: "Total number of evidence items created, by type",
		}, []string{"type"}),
		ClaimsLinked: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "research_evidence_claims_linked_total",
			Help: "Total number of claim links created, by link type",
		}, []string{"link_type"}),
		ReliabilityUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "research_evidence_reliability_updates_total",
			Help: "Total number of manual reliability overrides",
		}),
		TagsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "research_evidence_tags_added_total",
			Help: "Total number of tags appended to evidence",
		}),
		ExtractedSentences: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "research_evidence_extracted_sentences",
			Help:    "Number of candidate sentences returned per extraction",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		InitialReliability: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "research_evidence_initial_reliability",
			Help:    "Distribution of reliability scores assigned at creation",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "research_evidence_operation_duration_seconds",
			Help:    "Latency of evidence service operations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation", "outcome"}),
	}
}

func (m *Metrics) IncEvidenceCreated(evidenceType string, reliability float64) {
	if m == nil {
		return
	}
	m.EvidenceCreated.WithLabelValues(evidenceType).Inc()
	m.InitialReliability.Observe(reliability)
}

func (m *Metrics) IncClaimLinked(linkType string) {
	if m == nil {
		return
	}
	m.ClaimsLinked.WithLabelValues(linkType).Inc()
}

func (m *Metrics) IncReliabilityUpdated() {
	if m == nil {
		return
	}
	m.ReliabilityUpdates.Inc()
}

func (m *Metrics) AddTags(n int) {
	if m == nil {
		return
	}
	m.TagsAdded.Add(float64(n))
}

func (m *Metrics) ObserveExtraction(sentences int) {
	if m == nil {
		return
	}
	m.ExtractedSentences.Observe(float64(sentences))
}

// ObserveOperation records latency; outcome is "ok" or the error code.
func (m *Metrics) ObserveOperation(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation, outcome).Observe(seconds)
}
