// Package metrics holds the Prometheus collectors of the loaders, the record
// store and the stats engine. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "statsbot"

type Metrics struct {
	registry *prometheus.Registry

	channelBackfills *prometheus.CounterVec
	backfillMessages prometheus.Counter
	liveEvents       *prometheus.CounterVec
	recordsWritten   *prometheus.CounterVec
	recordsDeleted   *prometheus.CounterVec
	statsRequests    *prometheus.CounterVec
	identityLookups  *prometheus.CounterVec
}

// New registers every collector on a fresh registry, plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		channelBackfills: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "channel_backfills_total",
			Help:      "Channel backfills by terminal state.",
		}, []string{"state"}),
		backfillMessages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backfill_messages_total",
			Help:      "Messages ingested by backfill.",
		}),
		liveEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_events_total",
			Help:      "Live events handled per subscriber and result.",
		}, []string{"subscriber", "result"}),
		recordsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_written_total",
			Help:      "Records upserted by kind.",
		}, []string{"kind"}),
		recordsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_deleted_total",
			Help:      "Records removed by filtered deletion, by kind.",
		}, []string{"kind"}),
		statsRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "channel_stats_requests_total",
			Help:      "Channel stats computations by result.",
		}, []string{"result"}),
		identityLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_lookups_total",
			Help:      "Name lookups by the tier that answered them.",
		}, []string{"kind", "tier"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ChannelBackfill(state string) {
	if m == nil {
		return
	}
	m.channelBackfills.WithLabelValues(state).Inc()
}

func (m *Metrics) BackfillMessages(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.backfillMessages.Add(float64(n))
}

// LiveEvent has the signature of events.Observer.
func (m *Metrics) LiveEvent(subscriber, result string) {
	if m == nil {
		return
	}
	m.liveEvents.WithLabelValues(subscriber, result).Inc()
}

func (m *Metrics) RecordWritten(kind string) {
	if m == nil {
		return
	}
	m.recordsWritten.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordsDeleted(kind string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.recordsDeleted.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) StatsRequest(result string) {
	if m == nil {
		return
	}
	m.statsRequests.WithLabelValues(result).Inc()
}

// IdentityLookup counts a name lookup; kind is "user" or "channel", tier is
// "memory", "redis" or "platform".
func (m *Metrics) IdentityLookup(kind, tier string) {
	if m == nil {
		return
	}
	m.identityLookups.WithLabelValues(kind, tier).Inc()
}
