package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Number of change events published to Kafka",
		},
		[]string{"topic", "result"}, // ok|error
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Ordered cache operations",
		},
		[]string{"collection", "op"}, // hit|miss|replace|upsert|move|remove|evict|evicted|expired
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of entities currently in cache",
		},
		[]string{"collection"},
	)
	CacheParents = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_parents",
			Help: "Number of parent sequences currently in cache",
		},
		[]string{"collection"},
	)
	SyncStateTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_sync_state_transitions_total",
			Help: "Per-parent sync state transitions",
		},
		[]string{"collection", "state"},
	)
	ReconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_reconcile_total",
			Help: "Authoritative reconciliations after optimistic mutations",
		},
		[]string{"collection", "outcome"}, // converged|reverted|failed
	)
)

var (
	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Remote API request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"}, // status: 2xx|4xx|5xx|error
	)
	WSClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_clients",
			Help: "Connected websocket clients",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesPublished,
			CacheOps, CacheSize, CacheParents, SyncStateTransitions, ReconcileTotal,
			GatewayRequestDuration, WSClients,
		)
	})
}
